package service

import (
	"context"
	"fmt"
	"net/http"

	"procurement-api/pkg/config"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

// Fixed sampling parameters for recommendation completions.
const (
	completionTemperature = 0.7
	completionMaxTokens   = 800
)

// systemMessage frames every completion request sent to the model.
const systemMessage = "You are an expert AI procurement assistant."

// LLMService generates recommendation text through Groq's OpenAI-compatible
// chat completions API.
type LLMService struct {
	client *openai.Client
	config *config.GroqConfig
	logger *zap.Logger
}

func NewLLMService(cfg *config.GroqConfig, logger *zap.Logger) *LLMService {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	clientConfig.BaseURL = cfg.BaseURL
	clientConfig.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &LLMService{
		client: openai.NewClientWithConfig(clientConfig),
		config: cfg,
		logger: logger,
	}
}

// GenerateCompletion sends a single chat completion request and returns the
// top choice's text verbatim. The text is opaque natural language; nothing
// is parsed or validated beyond presence.
func (s *LLMService) GenerateCompletion(ctx context.Context, prompt string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.config.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemMessage},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: completionTemperature,
		MaxTokens:   completionMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no completion choices returned")
	}

	s.logger.Debug("completion generated",
		zap.String("model", s.config.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	return resp.Choices[0].Message.Content, nil
}
