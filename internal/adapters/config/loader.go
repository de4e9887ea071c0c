// Package config provides the job file loader for cachekey.
package config

import (
	"errors"
	"os"

	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.JobLoader = (*Loader)(nil)

// Loader implements ports.JobLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the job file at path and returns its jobs in file order.
// Cache attributes are not validated here; a job without them fails when its
// descriptor is built.
func (l *Loader) Load(path string) ([]domain.Job, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, errors.Join(domain.ErrJobsReadFailed, zerr.With(zerr.Wrap(err, domain.ErrJobsReadFailed.Error()), "path", path))
	}

	var jobfile Jobfile
	if err := yaml.Unmarshal(data, &jobfile); err != nil {
		return nil, errors.Join(domain.ErrJobsParseFailed, zerr.With(zerr.Wrap(err, domain.ErrJobsParseFailed.Error()), "path", path))
	}

	if jobfile.Version != "" && jobfile.Version != domain.JobsFileVersion {
		return nil, errors.Join(domain.ErrUnsupportedVersion, zerr.With(domain.ErrUnsupportedVersion, "version", jobfile.Version))
	}

	if len(jobfile.Jobs) == 0 {
		l.Logger.Warn("no jobs defined in " + path)
		return []domain.Job{}, nil
	}

	seen := make(map[string]int, len(jobfile.Jobs))
	for i, job := range jobfile.Jobs {
		if job.Label == "" {
			return nil, errors.Join(domain.ErrMissingLabel, zerr.With(domain.ErrMissingLabel, "index", i))
		}
		if first, ok := seen[job.Label]; ok {
			return nil, errors.Join(domain.ErrDuplicateLabel, zerr.With(zerr.With(domain.ErrDuplicateLabel, "label", job.Label), "first_index", first))
		}
		seen[job.Label] = i
	}

	return jobfile.Jobs, nil
}
