package bench

import (
	"github.com/prometheus/client_golang/prometheus"

	"pqmudh/internal/domain"
)

// Metrics collects agreement timings on a private registry so separate runs
// never share state.
type Metrics struct {
	registry *prometheus.Registry
	duration *prometheus.HistogramVec
	failures *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pqmudh",
				Subsystem: "bench",
				Name:      "agreement_duration_microseconds",
				Help:      "Time taken by one key agreement",
				Buckets:   prometheus.ExponentialBuckets(25, 2, 12),
			},
			[]string{"variant"},
		),
		failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pqmudh",
				Subsystem: "bench",
				Name:      "agreement_failures_total",
				Help:      "Number of key agreements that returned an error",
			},
			[]string{"variant"},
		),
	}
	m.registry.MustRegister(m.duration, m.failures)
	return m
}

// Observe records one set of timings.
func (m *Metrics) Observe(timings []domain.Timing) {
	for _, t := range timings {
		m.duration.With(prometheus.Labels{"variant": t.Variant.String()}).Observe(Micros(t.Elapsed))
	}
}

// Failed counts an error from variant.
func (m *Metrics) Failed(variant domain.Variant) {
	m.failures.With(prometheus.Labels{"variant": variant.String()}).Inc()
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile writes the collected metrics in the text exposition format,
// for the node exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
