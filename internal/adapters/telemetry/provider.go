package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/cachekey/internal/core/ports"
)

// NewProvider returns a tracer provider that reports every span through a Bridge.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithSpanProcessor(NewBridge(logger)),
	)
}

// Install sets a bridged provider as the global tracer provider.
// The returned function shuts it down; spans started afterwards are dropped.
func Install(logger ports.Logger) func(context.Context) error {
	tp := NewProvider(logger)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}
