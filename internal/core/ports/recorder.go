package ports

import "time"

// Recorder receives counters from the descriptor builder.
//
//go:generate go run go.uber.org/mock/mockgen -source=recorder.go -destination=mocks/mock_recorder.go -package=mocks
type Recorder interface {
	// JobTransformed counts a job that received a cache descriptor.
	JobTransformed(cacheType string)
	// ResourceHashed observes the time spent hashing one resource.
	ResourceHashed(d time.Duration)
	// ParameterMissed counts a parameter that fell back to the empty default.
	ParameterMissed(name string)
}
