package transform

import (
	"errors"
	"context"

	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config is the read-only configuration handed to every transform.
type Config struct {
	// Params is the build parameter store.
	Params ports.Parameters
	// Hasher hashes cache resources.
	Hasher ports.PathHasher
	// Workers bounds how many jobs a transform may process at once.
	Workers int
}

// Func transforms a list of jobs into a new list of jobs.
type Func func(ctx context.Context, cfg Config, jobs []domain.Job) ([]domain.Job, error)

// Sequence applies transforms in registration order.
type Sequence struct {
	funcs []Func
}

// NewSequence creates a Sequence from fns.
func NewSequence(fns ...Func) *Sequence {
	s := &Sequence{}
	for _, fn := range fns {
		s.Add(fn)
	}
	return s
}

// Add appends fn to the sequence.
func (s *Sequence) Add(fn Func) *Sequence {
	s.funcs = append(s.funcs, fn)
	return s
}

// Len returns the number of transforms in the sequence.
func (s *Sequence) Len() int {
	return len(s.funcs)
}

// Apply feeds jobs through every transform and returns the final list.
// It stops at the first failing transform.
func (s *Sequence) Apply(ctx context.Context, cfg Config, jobs []domain.Job) ([]domain.Job, error) {
	current := jobs
	for i, fn := range s.funcs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		next, err := fn(ctx, cfg, current)
		if err != nil {
			return nil, errors.Join(domain.ErrTransformFailed, zerr.With(zerr.Wrap(err, domain.ErrTransformFailed.Error()), "transform", i))
		}
		current = next
	}
	return current, nil
}
