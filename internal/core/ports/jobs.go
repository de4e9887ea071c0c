package ports

import (
	"io"

	"go.trai.ch/cachekey/internal/core/domain"
)

// JobLoader reads job records.
//
//go:generate go run go.uber.org/mock/mockgen -source=jobs.go -destination=mocks/mock_jobs.go -package=mocks
type JobLoader interface {
	// Load reads the job file at path and returns its jobs in file order.
	Load(path string) ([]domain.Job, error)
}

// JobWriter writes transformed job records.
type JobWriter interface {
	// Write encodes jobs to w in the given format, preserving their order.
	Write(w io.Writer, jobs []domain.Job, format domain.OutputFormat) error
}
