package domain

import "go.trai.ch/zerr"

var (
	// ErrMissingCacheAttributes is returned when a job has no attributes.cache section.
	ErrMissingCacheAttributes = zerr.New("job has no cache attributes")

	// ErrMissingCacheType is returned when a job's cache attributes do not name a cache type.
	ErrMissingCacheType = zerr.New("cache attributes have no type")

	// ErrMissingLabel is returned when a job in the job file has no label.
	ErrMissingLabel = zerr.New("job has no label")

	// ErrDuplicateLabel is returned when two jobs in the job file share a label.
	ErrDuplicateLabel = zerr.New("duplicate job label")

	// ErrUnsupportedVersion is returned when the job file declares an unknown schema version.
	ErrUnsupportedVersion = zerr.New("unsupported job file version")

	// ErrJobsReadFailed is returned when the job file cannot be read.
	ErrJobsReadFailed = zerr.New("failed to read job file")

	// ErrJobsParseFailed is returned when the job file cannot be parsed.
	ErrJobsParseFailed = zerr.New("failed to parse job file")

	// ErrParametersReadFailed is returned when the parameters file cannot be read.
	ErrParametersReadFailed = zerr.New("failed to read parameters file")

	// ErrParametersParseFailed is returned when the parameters file cannot be parsed.
	ErrParametersParseFailed = zerr.New("failed to parse parameters file")

	// ErrResourceNotFound is returned when a declared cache resource does not exist.
	ErrResourceNotFound = zerr.New("cache resource not found")

	// ErrPathStatFailed is returned when stating a resource path fails.
	ErrPathStatFailed = zerr.New("failed to stat path")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")

	// ErrDirectoryWalkFailed is returned when walking a resource directory fails.
	ErrDirectoryWalkFailed = zerr.New("failed to walk directory")

	// ErrUnknownHashAlgorithm is returned when an unsupported hash algorithm is requested.
	ErrUnknownHashAlgorithm = zerr.New("unknown hash algorithm, expected 'sha256' or 'xxhash'")

	// ErrUnknownOutputFormat is returned when an unsupported output format is requested.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected 'json', 'yaml' or 'text'")

	// ErrOutputWriteFailed is returned when transformed jobs cannot be written.
	ErrOutputWriteFailed = zerr.New("failed to write jobs")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")

	// ErrTransformFailed is returned when a transform in a sequence fails.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrDigestFailed is returned when the digest command fails as a whole.
	ErrDigestFailed = zerr.New("failed to compute cache descriptors")
)
