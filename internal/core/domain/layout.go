package domain

import "slices"

const (
	// JobsFileName is the default name of the job file.
	JobsFileName = "jobs.yaml"

	// ParametersFileName is the default name of the build parameters file.
	ParametersFileName = "parameters.yml"

	// DotEnvFileName is the name of the optional environment file loaded by the CLI.
	DotEnvFileName = ".env"

	// ParameterEnvPrefix is the prefix of environment variables that override build parameters.
	ParameterEnvPrefix = "CACHEKEY_PARAM_"

	// JobsFileVersion is the job file schema version understood by the loader.
	JobsFileVersion = "1"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// HashAlgorithm names the content hash used for cache resources.
type HashAlgorithm string

const (
	// HashSHA256 produces lowercase hex SHA-256 digests.
	HashSHA256 HashAlgorithm = "sha256"
	// HashXX produces 16 hex digit xxHash64 digests.
	HashXX HashAlgorithm = "xxhash"
)

// HashAlgorithms lists the supported algorithms, default first.
func HashAlgorithms() []HashAlgorithm {
	return []HashAlgorithm{HashSHA256, HashXX}
}

// Valid reports whether the algorithm is supported.
func (a HashAlgorithm) Valid() bool {
	return slices.Contains(HashAlgorithms(), a)
}

// OutputFormat names an encoding for transformed jobs.
type OutputFormat string

const (
	// FormatJSON writes indented JSON.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes YAML.
	FormatYAML OutputFormat = "yaml"
	// FormatText writes a human readable summary.
	FormatText OutputFormat = "text"
)

// OutputFormats lists the supported formats, default first.
func OutputFormats() []OutputFormat {
	return []OutputFormat{FormatJSON, FormatYAML, FormatText}
}

// Valid reports whether the format is supported.
func (f OutputFormat) Valid() bool {
	return slices.Contains(OutputFormats(), f)
}
