// Package transform implements the job transforms that run during graph construction.
package transform

import (
	"errors"
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const (
	// TracerName is the instrumentation name used for builder spans.
	TracerName = "go.trai.ch/cachekey/transform"
	// SpanName is the name of the span wrapping a single descriptor build.
	SpanName = "cache.descriptor"
)

// Builder attaches cache descriptors to jobs.
// It holds no per-job state and is safe for concurrent use.
type Builder struct {
	recorder ports.Recorder
	tracer   trace.Tracer
}

// NewBuilder creates a Builder that reports to recorder.
// A nil recorder discards all counters.
func NewBuilder(recorder ports.Recorder) *Builder {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &Builder{
		recorder: recorder,
		tracer:   otel.Tracer(TracerName),
	}
}

// WithTracer replaces the tracer used for descriptor spans.
func (b *Builder) WithTracer(tracer trace.Tracer) *Builder {
	b.tracer = tracer
	return b
}

// Build returns a copy of job with its cache descriptor computed from the job's
// cache attributes. Resource digests come first, then parameter values, each in
// declaration order. Unset parameters contribute an empty string.
// The input job is left untouched.
func (b *Builder) Build(
	ctx context.Context,
	job domain.Job,
	params ports.Parameters,
	hasher ports.PathHasher,
) (domain.Job, error) {
	_, span := b.tracer.Start(ctx, SpanName, trace.WithAttributes(
		attribute.String("job.label", job.Label),
	))
	defer span.End()

	desc, err := b.describe(job, params, hasher)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return domain.Job{}, err
	}

	span.SetAttributes(
		attribute.String("cache.type", desc.Type),
		attribute.Int("cache.digest_entries", len(desc.DigestData)),
	)
	b.recorder.JobTransformed(desc.Type)

	out := job.Clone()
	out.Cache = &desc
	return out, nil
}

func (b *Builder) describe(
	job domain.Job,
	params ports.Parameters,
	hasher ports.PathHasher,
) (domain.CacheDescriptor, error) {
	attrs := job.Attributes.Cache
	if attrs == nil {
		return domain.CacheDescriptor{}, errors.Join(domain.ErrMissingCacheAttributes, zerr.With(domain.ErrMissingCacheAttributes, "job", job.Label))
	}
	if attrs.Type == "" {
		return domain.CacheDescriptor{}, errors.Join(domain.ErrMissingCacheType, zerr.With(domain.ErrMissingCacheType, "job", job.Label))
	}

	digest := make([]string, 0, len(attrs.Resources)+len(attrs.Parameters))

	for _, resource := range attrs.Resources {
		start := time.Now()
		h, err := hasher.HashPath(resource)
		if err != nil {
			// Hashing failures are returned as the hasher reported them.
			return domain.CacheDescriptor{}, err
		}
		b.recorder.ResourceHashed(time.Since(start))
		digest = append(digest, h)
	}

	for _, name := range attrs.Parameters {
		// The parameter's declared default is not consulted; unset means "".
		value, ok := params.Lookup(name)
		if !ok {
			b.recorder.ParameterMissed(name)
			value = ""
		}
		digest = append(digest, value)
	}

	return domain.CacheDescriptor{
		Type:       attrs.Type,
		Name:       job.Label,
		DigestData: digest,
	}, nil
}

// BuildAll applies Build to every job and returns the results in input order.
// With workers greater than one, jobs are built concurrently; the first failure
// cancels the remaining builds and is returned with no partial output.
func (b *Builder) BuildAll(
	ctx context.Context,
	jobs []domain.Job,
	params ports.Parameters,
	hasher ports.PathHasher,
	workers int,
) ([]domain.Job, error) {
	out := make([]domain.Job, len(jobs))

	if workers <= 1 {
		for i := range jobs {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			built, err := b.Build(ctx, jobs[i], params, hasher)
			if err != nil {
				return nil, err
			}
			out[i] = built
		}
		return out, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			built, err := b.Build(gctx, jobs[i], params, hasher)
			if err != nil {
				return err
			}
			out[i] = built
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// AddCache is the Func form of the builder, for use in a Sequence.
func (b *Builder) AddCache(ctx context.Context, cfg Config, jobs []domain.Job) ([]domain.Job, error) {
	return b.BuildAll(ctx, jobs, cfg.Params, cfg.Hasher, cfg.Workers)
}

type nopRecorder struct{}

func (nopRecorder) JobTransformed(string)        {}
func (nopRecorder) ResourceHashed(time.Duration) {}
func (nopRecorder) ParameterMissed(string)       {}
