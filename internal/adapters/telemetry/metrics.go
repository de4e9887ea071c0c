// Package telemetry provides the metrics and tracing adapters.
package telemetry

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/cachekey/internal/core/domain"
	"go.trai.ch/cachekey/internal/core/ports"
	"go.trai.ch/zerr"
)

const namespace = "cachekey"

var _ ports.Recorder = (*Metrics)(nil)

// Metrics records descriptor builder counters on a private Prometheus registry.
type Metrics struct {
	registry        *prometheus.Registry
	jobsTransformed *prometheus.CounterVec
	resourcesHashed prometheus.Counter
	hashDuration    prometheus.Histogram
	parameterMisses prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		jobsTransformed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "jobs_transformed_total",
			Help:      "Jobs that received a cache descriptor, by cache type.",
		}, []string{"type"}),
		resourcesHashed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "resources_hashed_total",
			Help:      "Cache resources hashed.",
		}),
		hashDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "resource_hash_duration_seconds",
			Help:      "Time spent hashing a single cache resource.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		parameterMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parameter_misses_total",
			Help:      "Cache parameters that were not set and fell back to the empty string.",
		}),
	}

	m.registry.MustRegister(m.jobsTransformed, m.resourcesHashed, m.hashDuration, m.parameterMisses)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// JobTransformed counts a job that received a cache descriptor.
func (m *Metrics) JobTransformed(cacheType string) {
	m.jobsTransformed.WithLabelValues(cacheType).Inc()
}

// ResourceHashed observes one resource hash.
func (m *Metrics) ResourceHashed(d time.Duration) {
	m.resourcesHashed.Inc()
	m.hashDuration.Observe(d.Seconds())
}

// ParameterMissed counts a parameter that was not set. Parameter names come
// from the job file, so they are not used as a label.
func (m *Metrics) ParameterMissed(string) {
	m.parameterMisses.Inc()
}

// WriteTextfile writes the registry in the node exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return errors.Join(domain.ErrMetricsWriteFailed, zerr.With(zerr.Wrap(err, domain.ErrMetricsWriteFailed.Error()), "path", path))
	}
	return nil
}
