package transform_test

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports/mocks"
	"go.trai.ch/cachekey/internal/engine/transform"
	"go.uber.org/mock/gomock"
)

// mapParams is a fixed parameter store for tests.
type mapParams map[string]string

func (p mapParams) Get(name, fallback string) string {
	if v, ok := p[name]; ok {
		return v
	}
	return fallback
}

func (p mapParams) Lookup(name string) (string, bool) {
	v, ok := p[name]
	return v, ok
}

// mapHasher hashes paths by table lookup and counts calls.
type mapHasher struct {
	digests map[string]string
	calls   atomic.Int64
}

func (h *mapHasher) HashPath(path string) (string, error) {
	h.calls.Add(1)
	if d, ok := h.digests[path]; ok {
		return d, nil
	}
	return "", fmt.Errorf("no such file: %s", path)
}

func cacheJob(label, cacheType string, resources, params []string) domain.Job {
	return domain.Job{
		Label: label,
		Attributes: domain.Attributes{
			Cache: &domain.CacheAttributes{
				Type:       cacheType,
				Resources:  resources,
				Parameters: params,
			},
		},
	}
}

func TestBuilder_Build_ResourcesThenParameters(t *testing.T) {
	hasher := &mapHasher{digests: map[string]string{"a.txt": "H1", "b.txt": "H2"}}
	params := mapParams{}

	b := transform.NewBuilder(nil)
	job := cacheJob("build-foo", "toolchain", []string{"a.txt", "b.txt"}, []string{"p1"})

	got, err := b.Build(context.Background(), job, params, hasher)
	require.NoError(t, err)
	require.NotNil(t, got.Cache)
	assert.Equal(t, []string{"H1", "H2", ""}, got.Cache.DigestData)
	assert.Equal(t, "toolchain", got.Cache.Type)
	assert.Equal(t, "build-foo", got.Cache.Name)
}

func TestBuilder_Build_EmptyJob(t *testing.T) {
	b := transform.NewBuilder(nil)
	job := cacheJob("build-foo", "docker-image", nil, nil)

	got, err := b.Build(context.Background(), job, mapParams{}, &mapHasher{})
	require.NoError(t, err)

	assert.Equal(t, &domain.CacheDescriptor{
		Type:       "docker-image",
		Name:       "build-foo",
		DigestData: []string{},
	}, got.Cache)
}

func TestBuilder_Build_Ordering(t *testing.T) {
	hasher := &mapHasher{digests: map[string]string{"a": "HA", "b": "HB", "c": "HC"}}
	params := mapParams{"x": "1", "y": "2"}
	b := transform.NewBuilder(nil)

	tests := []struct {
		name      string
		resources []string
		params    []string
		want      []string
	}{
		{"resources only", []string{"a", "b", "c"}, nil, []string{"HA", "HB", "HC"}},
		{"reordered resources", []string{"c", "a", "b"}, nil, []string{"HC", "HA", "HB"}},
		{"parameters only", nil, []string{"y", "x"}, []string{"2", "1"}},
		{"mixed", []string{"b"}, []string{"x", "missing", "y"}, []string{"HB", "1", "", "2"}},
		{"duplicates kept", []string{"a", "a"}, []string{"x", "x"}, []string{"HA", "HA", "1", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := cacheJob("job", "t", tt.resources, tt.params)

			got, err := b.Build(context.Background(), job, params, hasher)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Cache.DigestData)
			assert.Len(t, got.Cache.DigestData, len(tt.resources)+len(tt.params))
		})
	}
}

func TestBuilder_Build_ConfiguredEmptyParameterIsNotAMiss(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)
	recorder.EXPECT().ParameterMissed("absent").Times(1)
	recorder.EXPECT().JobTransformed("t").Times(1)

	b := transform.NewBuilder(recorder)
	job := cacheJob("job", "t", nil, []string{"blank", "absent"})

	got, err := b.Build(context.Background(), job, mapParams{"blank": ""}, &mapHasher{})
	require.NoError(t, err)
	assert.Equal(t, []string{"", ""}, got.Cache.DigestData)
}

func TestBuilder_Build_UsesCollaborators(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockPathHasher(ctrl)
	params := mocks.NewMockParameters(ctrl)
	recorder := mocks.NewMockRecorder(ctrl)

	gomock.InOrder(
		hasher.EXPECT().HashPath("taskcluster/docker/base/Dockerfile").Return("d1", nil),
		recorder.EXPECT().ResourceHashed(gomock.Any()),
		params.EXPECT().Lookup("head_rev").Return("abc123", true),
		recorder.EXPECT().JobTransformed("docker-image"),
	)

	b := transform.NewBuilder(recorder)
	job := cacheJob(
		"build-docker-image-base",
		"docker-image",
		[]string{"taskcluster/docker/base/Dockerfile"},
		[]string{"head_rev"},
	)

	got, err := b.Build(context.Background(), job, params, hasher)
	require.NoError(t, err)
	assert.Equal(t, []string{"d1", "abc123"}, got.Cache.DigestData)
}

func TestBuilder_Build_DoesNotMutateInput(t *testing.T) {
	hasher := &mapHasher{digests: map[string]string{"a.txt": "H1"}}
	b := transform.NewBuilder(nil)
	job := cacheJob("build-foo", "toolchain", []string{"a.txt"}, []string{"p1"})
	job.Extra = map[string]any{"description": "foo"}

	got, err := b.Build(context.Background(), job, mapParams{"p1": "v"}, hasher)
	require.NoError(t, err)

	assert.Nil(t, job.Cache)
	require.NotNil(t, got.Cache)
	assert.Equal(t, "foo", got.Extra["description"])

	got.Attributes.Cache.Resources[0] = "changed"
	assert.Equal(t, "a.txt", job.Attributes.Cache.Resources[0])
}

func TestBuilder_Build_Idempotent(t *testing.T) {
	hasher := &mapHasher{digests: map[string]string{"a.txt": "H1", "b.txt": "H2"}}
	params := mapParams{"p1": "one"}
	b := transform.NewBuilder(nil)
	job := cacheJob("build-foo", "toolchain", []string{"a.txt", "b.txt"}, []string{"p1", "p2"})

	first, err := b.Build(context.Background(), job, params, hasher)
	require.NoError(t, err)

	second, err := b.Build(context.Background(), first, params, hasher)
	require.NoError(t, err)

	assert.Equal(t, first.Cache, second.Cache)
}

func TestBuilder_Build_ConfigurationErrors(t *testing.T) {
	b := transform.NewBuilder(nil)

	tests := []struct {
		name    string
		job     domain.Job
		wantErr error
	}{
		{
			name:    "missing cache attributes",
			job:     domain.Job{Label: "lint"},
			wantErr: domain.ErrMissingCacheAttributes,
		},
		{
			name:    "missing cache type",
			job:     cacheJob("lint", "", []string{"a.txt"}, nil),
			wantErr: domain.ErrMissingCacheType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := &mapHasher{}

			_, err := b.Build(context.Background(), tt.job, mapParams{}, hasher)
			require.Error(t, err)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, hasher.calls.Load(), "no resource may be hashed for a malformed job")
		})
	}
}

func TestBuilder_Build_HashErrorPropagatesUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	hasher := mocks.NewMockPathHasher(ctrl)
	hashErr := errors.New("permission denied")
	hasher.EXPECT().HashPath("secret.txt").Return("", hashErr)

	b := transform.NewBuilder(nil)
	job := cacheJob("job", "t", []string{"secret.txt", "never.txt"}, []string{"p"})

	_, err := b.Build(context.Background(), job, mocks.NewMockParameters(ctrl), hasher)
	require.Same(t, hashErr, err)
}

func TestBuilder_Build_Span(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	b := transform.NewBuilder(nil).WithTracer(tp.Tracer("test"))

	_, err := b.Build(context.Background(), cacheJob("ok", "docker-image", nil, []string{"p"}), mapParams{}, &mapHasher{})
	require.NoError(t, err)
	_, err = b.Build(context.Background(), domain.Job{Label: "broken"}, mapParams{}, &mapHasher{})
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, transform.SpanName, spans[0].Name())
	attrs := map[string]string{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "ok", attrs["job.label"])
	assert.Equal(t, "docker-image", attrs["cache.type"])
	assert.Equal(t, "1", attrs["cache.digest_entries"])
	assert.Equal(t, codes.Unset, spans[0].Status().Code)

	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Contains(t, spans[1].Status().Description, domain.ErrMissingCacheAttributes.Error())
}

func TestBuilder_BuildAll_PreservesOrder(t *testing.T) {
	digests := map[string]string{}
	jobs := make([]domain.Job, 0, 50)
	for i := range 50 {
		path := fmt.Sprintf("res-%02d", i)
		digests[path] = fmt.Sprintf("H%02d", i)
		jobs = append(jobs, cacheJob(fmt.Sprintf("job-%02d", i), "t", []string{path}, []string{"p"}))
	}
	params := mapParams{"p": "v"}

	for _, workers := range []int{0, 1, 4, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := transform.NewBuilder(nil)

			got, err := b.BuildAll(context.Background(), jobs, params, &mapHasher{digests: digests}, workers)
			require.NoError(t, err)
			require.Len(t, got, len(jobs))

			for i, job := range got {
				assert.Equal(t, jobs[i].Label, job.Label)
				assert.Equal(t, jobs[i].Label, job.Cache.Name)
				assert.Equal(t, []string{fmt.Sprintf("H%02d", i), "v"}, job.Cache.DigestData)
			}
		})
	}
}

func TestBuilder_BuildAll_FailFast(t *testing.T) {
	hasher := &mapHasher{digests: map[string]string{"ok": "H"}}
	jobs := []domain.Job{
		cacheJob("first", "t", []string{"ok"}, nil),
		{Label: "malformed"},
		cacheJob("third", "t", []string{"ok"}, nil),
	}

	for _, workers := range []int{1, 3} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			b := transform.NewBuilder(nil)

			got, err := b.BuildAll(context.Background(), jobs, mapParams{}, hasher, workers)
			require.Error(t, err)
			require.ErrorIs(t, err, domain.ErrMissingCacheAttributes)
			assert.Nil(t, got)
		})
	}
}

func TestBuilder_BuildAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	b := transform.NewBuilder(nil)
	_, err := b.BuildAll(ctx, []domain.Job{cacheJob("a", "t", nil, nil)}, mapParams{}, &mapHasher{}, 1)
	require.ErrorIs(t, err, context.Canceled)
}
