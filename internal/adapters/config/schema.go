package config

import "go.trai.ch/cachekey/internal/core/domain"

// Jobfile represents the structure of the jobs.yaml file.
type Jobfile struct {
	Version string       `yaml:"version"`
	Jobs    []domain.Job `yaml:"jobs"`
}
