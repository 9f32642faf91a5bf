package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector provides Prometheus metrics collection for the
// recommendation pipeline and its upstream providers.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  prometheus.Histogram
	upstreamDuration *prometheus.HistogramVec
	upstreamErrors   *prometheus.CounterVec
	registry         *prometheus.Registry
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *MetricsCollector {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procurement_requests_total",
			Help: "Total number of recommendation requests by outcome status",
		},
		[]string{"status"},
	)

	requestDuration := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "procurement_request_duration_seconds",
			Help:    "End-to-end duration of recommendation requests",
			Buckets: []float64{0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
	)

	upstreamDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "procurement_upstream_duration_seconds",
			Help:    "Duration of upstream provider calls by provider",
			Buckets: []float64{0.05, 0.1, 0.5, 1.0, 2.5, 5.0, 10.0, 30.0, 60.0},
		},
		[]string{"provider"},
	)

	upstreamErrors := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "procurement_upstream_errors_total",
			Help: "Total number of upstream provider errors by error type",
		},
		[]string{"provider", "error_type"},
	)

	registry.MustRegister(requestsTotal)
	registry.MustRegister(requestDuration)
	registry.MustRegister(upstreamDuration)
	registry.MustRegister(upstreamErrors)

	return &MetricsCollector{
		requestsTotal:    requestsTotal,
		requestDuration:  requestDuration,
		upstreamDuration: upstreamDuration,
		upstreamErrors:   upstreamErrors,
		registry:         registry,
	}
}

// RecordRequest records the completion of a recommendation request
func (m *MetricsCollector) RecordRequest(ctx context.Context, status string, durationMs int64) {
	m.requestsTotal.WithLabelValues(status).Inc()
	m.requestDuration.Observe(float64(durationMs) / 1000.0)
}

// RecordUpstream records the duration of a single upstream provider call
func (m *MetricsCollector) RecordUpstream(ctx context.Context, provider string, durationMs int64) {
	m.upstreamDuration.WithLabelValues(provider).Observe(float64(durationMs) / 1000.0)
}

// RecordUpstreamError records an upstream provider error occurrence
func (m *MetricsCollector) RecordUpstreamError(ctx context.Context, provider string, errorType string) {
	m.upstreamErrors.WithLabelValues(provider, errorType).Inc()
}

// Registry returns the Prometheus registry for HTTP exposure
func (m *MetricsCollector) Registry() *prometheus.Registry {
	return m.registry
}
