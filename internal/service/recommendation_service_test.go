package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"procurement-api/internal/models"
	"procurement-api/pkg/metrics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeSearcher struct {
	suppliers []models.Supplier
	err       error
	calls     int
	material  string
	location  string
}

func (f *fakeSearcher) SearchSuppliers(ctx context.Context, material, location string) ([]models.Supplier, error) {
	f.calls++
	f.material = material
	f.location = location
	return f.suppliers, f.err
}

type fakeCompleter struct {
	response string
	err      error
	calls    int
	prompt   string
}

func (f *fakeCompleter) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.response, f.err
}

// recordingCollector captures what the pipeline reports without pulling the
// Prometheus registry into these tests.
type recordingCollector struct {
	requests       []string
	upstreamCalls  []string
	upstreamErrors map[string]string
}

func (r *recordingCollector) RecordRequest(ctx context.Context, status string, durationMs int64) {
	r.requests = append(r.requests, status)
}

func (r *recordingCollector) RecordUpstream(ctx context.Context, provider string, durationMs int64) {
	r.upstreamCalls = append(r.upstreamCalls, provider)
}

func (r *recordingCollector) RecordUpstreamError(ctx context.Context, provider string, errorType string) {
	if r.upstreamErrors == nil {
		r.upstreamErrors = make(map[string]string)
	}
	r.upstreamErrors[provider] = errorType
}

var testSuppliers = []models.Supplier{
	{Title: "Vardhman Cables", Link: "https://vardhman.example", Snippet: "Copper cable wholesaler"},
	{Title: "Pune Wires Ltd", Link: "https://punewires.example", Snippet: "ISO certified"},
	{Title: "Shakti Metals", Link: "https://shakti.example", Snippet: "Bulk discounts"},
}

func TestRecommend_Success(t *testing.T) {
	searcher := &fakeSearcher{suppliers: testSuppliers}
	completer := &fakeCompleter{response: "Order from Vardhman Cables."}
	svc := NewRecommendationService(searcher, completer, metrics.NewNoopCollector(), zap.NewNop())

	resp, err := svc.Recommend(context.Background(), "copper cable", 500, "Pune", 200000)
	require.NoError(t, err)

	assert.Equal(t, "copper cable", resp.Material)
	assert.Equal(t, "Pune", resp.Location)
	assert.Equal(t, 200000.0, resp.Budget)
	assert.Equal(t, "Order from Vardhman Cables.", resp.Recommendation)
	assert.Equal(t, testSuppliers, resp.TopSuppliers)

	assert.Equal(t, 1, searcher.calls)
	assert.Equal(t, "copper cable", searcher.material)
	assert.Equal(t, "Pune", searcher.location)
	assert.Equal(t, 1, completer.calls)
}

func TestRecommend_PromptContents(t *testing.T) {
	searcher := &fakeSearcher{suppliers: testSuppliers}
	completer := &fakeCompleter{response: "ok"}
	svc := NewRecommendationService(searcher, completer, metrics.NewNoopCollector(), zap.NewNop())

	_, err := svc.Recommend(context.Background(), "copper cable", 500, "Pune", 200000)
	require.NoError(t, err)

	prompt := completer.prompt
	assert.True(t, strings.HasPrefix(prompt, "You are an AI procurement strategist for POWERGRID."))
	assert.Contains(t, prompt, "Material: copper cable")
	assert.Contains(t, prompt, "Required Quantity: 500")
	assert.Contains(t, prompt, "Project Location: Pune")
	assert.Contains(t, prompt, "Budget: ₹200000.00")
	assert.Contains(t, prompt, "- Vardhman Cables: https://vardhman.example (Copper cable wholesaler)")
	assert.Contains(t, prompt, "- Shakti Metals: https://shakti.example (Bulk discounts)")
	assert.Contains(t, prompt, "1. Top 3 suppliers ranked by relevance.")
	assert.Contains(t, prompt, "4. Any risk factors or negotiation suggestions.")
}

func TestRecommend_NoSuppliers(t *testing.T) {
	searcher := &fakeSearcher{suppliers: []models.Supplier{}}
	completer := &fakeCompleter{response: "should never run"}
	svc := NewRecommendationService(searcher, completer, metrics.NewNoopCollector(), zap.NewNop())

	resp, err := svc.Recommend(context.Background(), "unobtainium", 1, "Atlantis", 10)
	require.ErrorIs(t, err, ErrNoSuppliers)
	assert.Nil(t, resp)
	assert.Equal(t, 0, completer.calls)
}

func TestRecommend_SearchErrorPropagates(t *testing.T) {
	upstream := &UpstreamError{Provider: ProviderSerpAPI, Err: errors.New("dial tcp: connection refused")}
	searcher := &fakeSearcher{err: upstream}
	completer := &fakeCompleter{}
	collector := &recordingCollector{}
	svc := NewRecommendationService(searcher, completer, collector, zap.NewNop())

	resp, err := svc.Recommend(context.Background(), "copper cable", 500, "Pune", 200000)
	require.Error(t, err)
	assert.Nil(t, resp)

	var upErr *UpstreamError
	require.ErrorAs(t, err, &upErr)
	assert.Equal(t, ProviderSerpAPI, upErr.Provider)

	assert.Equal(t, 0, completer.calls)
	assert.Equal(t, ErrTypeNetwork, collector.upstreamErrors[ProviderSerpAPI])
}

func TestRecommend_CompletionErrorPropagates(t *testing.T) {
	searcher := &fakeSearcher{suppliers: testSuppliers}
	completer := &fakeCompleter{err: errors.New("completion request failed: rate limit exceeded")}
	collector := &recordingCollector{}
	svc := NewRecommendationService(searcher, completer, collector, zap.NewNop())

	resp, err := svc.Recommend(context.Background(), "copper cable", 500, "Pune", 200000)
	require.EqualError(t, err, "completion request failed: rate limit exceeded")
	assert.Nil(t, resp)

	assert.Equal(t, []string{ProviderSerpAPI, ProviderGroq}, collector.upstreamCalls)
	assert.Equal(t, ErrTypeLLM, collector.upstreamErrors[ProviderGroq])
}
