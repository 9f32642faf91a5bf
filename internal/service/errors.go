package service

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
)

// Provider names used in upstream errors and metrics labels.
const (
	ProviderSerpAPI = "serpapi"
	ProviderGroq    = "groq"
)

// Error type constants for classification
const (
	ErrTypeNetwork    = "network"
	ErrTypeTimeout    = "timeout"
	ErrTypeSearch     = "search"
	ErrTypeLLM        = "llm"
	ErrTypeValidation = "validation"
	ErrTypeUnknown    = "unknown"
)

// ErrNoSuppliers reports that the search provider returned zero organic
// results for the requested material and location.
var ErrNoSuppliers = errors.New("no suppliers found")

// UpstreamError wraps a failure from an external provider so the handler
// can map it to a 500 response that still carries the provider error text.
type UpstreamError struct {
	Provider string
	Err      error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s error: %v", strings.ToUpper(e.Provider), e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ClassifyError inspects an error and returns its type classification.
// This enables grouping errors by category in metrics.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	errStrLower := strings.ToLower(err.Error())

	// Check for timeout errors
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(errStrLower, "timeout") || strings.Contains(errStrLower, "deadline exceeded") {
		return ErrTypeTimeout
	}

	// Check for network errors
	var netErr *net.OpError
	if errors.As(err, &netErr) {
		return ErrTypeNetwork
	}
	if strings.Contains(errStrLower, "connection refused") ||
		strings.Contains(errStrLower, "connection reset") ||
		strings.Contains(errStrLower, "no such host") ||
		strings.Contains(errStrLower, "network is unreachable") ||
		strings.Contains(errStrLower, "dial tcp") ||
		strings.Contains(errStrLower, "eof") {
		return ErrTypeNetwork
	}

	// Check for search provider errors
	if strings.Contains(errStrLower, "serpapi") ||
		strings.Contains(errStrLower, "search request") ||
		strings.Contains(errStrLower, "organic") {
		return ErrTypeSearch
	}

	// Check for completion provider errors
	if strings.Contains(errStrLower, "groq") ||
		strings.Contains(errStrLower, "completion") ||
		strings.Contains(errStrLower, "api error") ||
		strings.Contains(errStrLower, "rate limit") ||
		strings.Contains(errStrLower, "model") {
		return ErrTypeLLM
	}

	// Check for validation errors
	if strings.Contains(errStrLower, "validation") ||
		strings.Contains(errStrLower, "invalid") ||
		strings.Contains(errStrLower, "required") ||
		strings.Contains(errStrLower, "cannot be empty") ||
		strings.Contains(errStrLower, "must be") {
		return ErrTypeValidation
	}

	// Default to unknown
	return ErrTypeUnknown
}
