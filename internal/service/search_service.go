package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"procurement-api/internal/models"
	"procurement-api/pkg/config"

	"go.uber.org/zap"
)

// maxSuppliers caps how many organic results become suppliers. Only the
// first page is requested; there is no pagination or retry.
const maxSuppliers = 5

// SearchService queries the SerpAPI Google engine for supplier listings.
type SearchService struct {
	config     *config.SerpAPIConfig
	logger     *zap.Logger
	httpClient *http.Client
}

func NewSearchService(cfg *config.SerpAPIConfig, logger *zap.Logger) *SearchService {
	return &SearchService{
		config:     cfg,
		logger:     logger,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

// SearchSuppliers issues a single search request and returns at most five
// suppliers built from the first page's organic results. An empty slice
// means the upstream had no organic results for this material and location;
// the caller decides how to surface that.
func (s *SearchService) SearchSuppliers(ctx context.Context, material, location string) ([]models.Supplier, error) {
	query := fmt.Sprintf("%s suppliers in %s", material, location)

	params := url.Values{}
	params.Set("engine", "google")
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxSuppliers))
	params.Set("api_key", s.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, "GET", s.config.BaseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, &UpstreamError{Provider: ProviderSerpAPI, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Provider: ProviderSerpAPI, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UpstreamError{Provider: ProviderSerpAPI, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{Provider: ProviderSerpAPI, Err: fmt.Errorf("search request failed with status %d: %s", resp.StatusCode, string(body))}
	}

	var searchResp searchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, &UpstreamError{Provider: ProviderSerpAPI, Err: fmt.Errorf("failed to unmarshal response: %w", err)}
	}

	// SerpAPI reports "no results" as a 200 with an error field and no
	// organic results. That is the empty case, not a failure.
	if searchResp.Error != "" {
		s.logger.Warn("search provider reported an error",
			zap.String("query", query),
			zap.String("error", searchResp.Error),
		)
	}

	results := searchResp.OrganicResults
	if len(results) > maxSuppliers {
		results = results[:maxSuppliers]
	}

	suppliers := make([]models.Supplier, 0, len(results))
	for _, res := range results {
		suppliers = append(suppliers, models.Supplier{
			Title:   res.Title,
			Link:    res.Link,
			Snippet: res.Snippet,
		})
	}

	s.logger.Debug("supplier search completed",
		zap.String("query", query),
		zap.Int("results", len(suppliers)),
	)

	return suppliers, nil
}
