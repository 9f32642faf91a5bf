package metrics

import "context"

// NoopCollector is a no-op implementation used when metrics collection
// is disabled in configuration.
type NoopCollector struct{}

// NewNoopCollector creates a no-op collector
func NewNoopCollector() *NoopCollector {
	return &NoopCollector{}
}

// RecordRequest does nothing when metrics are disabled
func (n *NoopCollector) RecordRequest(ctx context.Context, status string, durationMs int64) {
}

// RecordUpstream does nothing when metrics are disabled
func (n *NoopCollector) RecordUpstream(ctx context.Context, provider string, durationMs int64) {
}

// RecordUpstreamError does nothing when metrics are disabled
func (n *NoopCollector) RecordUpstreamError(ctx context.Context, provider string, errorType string) {
}
