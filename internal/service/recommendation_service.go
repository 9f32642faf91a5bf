package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"procurement-api/internal/dto"
	"procurement-api/internal/models"
	"procurement-api/pkg/metrics"

	"go.uber.org/zap"
)

// SupplierSearcher finds candidate suppliers for a material in a location.
type SupplierSearcher interface {
	SearchSuppliers(ctx context.Context, material, location string) ([]models.Supplier, error)
}

// CompletionClient turns a prompt into generated recommendation text.
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, prompt string) (string, error)
}

// RecommendationService orchestrates a single recommendation request:
// supplier lookup, prompt assembly, completion, response assembly. The
// pipeline is linear and terminal on first failure.
type RecommendationService struct {
	searcher  SupplierSearcher
	completer CompletionClient
	metrics   metrics.Collector
	logger    *zap.Logger
}

func NewRecommendationService(
	searcher SupplierSearcher,
	completer CompletionClient,
	collector metrics.Collector,
	logger *zap.Logger,
) *RecommendationService {
	return &RecommendationService{
		searcher:  searcher,
		completer: completer,
		metrics:   collector,
		logger:    logger,
	}
}

// Recommend runs the pipeline for one validated request. It returns
// ErrNoSuppliers without calling the completion provider when the search
// yields nothing, and propagates upstream errors unchanged.
func (s *RecommendationService) Recommend(ctx context.Context, material string, quantity int, location string, budget float64) (*dto.ProcurementResponse, error) {
	searchStart := time.Now()
	suppliers, err := s.searcher.SearchSuppliers(ctx, material, location)
	s.metrics.RecordUpstream(ctx, ProviderSerpAPI, time.Since(searchStart).Milliseconds())
	if err != nil {
		s.metrics.RecordUpstreamError(ctx, ProviderSerpAPI, ClassifyError(err))
		return nil, err
	}

	if len(suppliers) == 0 {
		s.logger.Info("no suppliers found",
			zap.String("material", material),
			zap.String("location", location),
		)
		return nil, ErrNoSuppliers
	}

	prompt := buildPrompt(material, quantity, location, budget, suppliers)

	completionStart := time.Now()
	recommendation, err := s.completer.GenerateCompletion(ctx, prompt)
	s.metrics.RecordUpstream(ctx, ProviderGroq, time.Since(completionStart).Milliseconds())
	if err != nil {
		s.metrics.RecordUpstreamError(ctx, ProviderGroq, ClassifyError(err))
		return nil, err
	}

	s.logger.Info("recommendation generated",
		zap.String("material", material),
		zap.String("location", location),
		zap.Int("suppliers", len(suppliers)),
	)

	return &dto.ProcurementResponse{
		Material:       material,
		Location:       location,
		Budget:         budget,
		Recommendation: recommendation,
		TopSuppliers:   suppliers,
	}, nil
}

// buildPrompt renders the fixed prompt: instruction, echo of the request
// fields, one bullet per supplier, and the requested-output checklist.
func buildPrompt(material string, quantity int, location string, budget float64, suppliers []models.Supplier) string {
	lines := make([]string, 0, len(suppliers))
	for _, sup := range suppliers {
		lines = append(lines, fmt.Sprintf("- %s: %s (%s)", sup.Title, sup.Link, sup.Snippet))
	}
	supplierSummary := strings.Join(lines, "\n")

	return fmt.Sprintf(`You are an AI procurement strategist for POWERGRID.
Analyze the following inputs and recommend a procurement plan.

Material: %s
Required Quantity: %d
Project Location: %s
Budget: ₹%.2f

Available supplier data:
%s

Provide:
1. Top 3 suppliers ranked by relevance.
2. Recommended order quantity split (if applicable).
3. Estimated total cost and delivery timeframe.
4. Any risk factors or negotiation suggestions.`,
		material, quantity, location, budget, supplierSummary)
}
