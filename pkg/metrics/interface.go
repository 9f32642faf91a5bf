package metrics

import "context"

// Collector is the interface for metrics collection.
// Implementations include the Prometheus-backed collector and the no-op
// collector used when metrics are disabled in configuration.
type Collector interface {
	RecordRequest(ctx context.Context, status string, durationMs int64)
	RecordUpstream(ctx context.Context, provider string, durationMs int64)
	RecordUpstreamError(ctx context.Context, provider string, errorType string)
}
