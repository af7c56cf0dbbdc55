// Package ai wraps the Gemini API behind the ModelClient port.
package ai

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"google.golang.org/genai"
)

// GeminiClient implements ports.ModelClient against the Gemini API. The API
// key is injected here, at construction, and nowhere else.
type GeminiClient struct {
	client *genai.Client
	model  string
	logger zerolog.Logger
}

func NewGeminiClient(ctx context.Context, apiKey, model string, logger zerolog.Logger) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	return &GeminiClient{client: client, model: model, logger: logger}, nil
}

// GenerateText sends one prompt and returns the concatenated response text.
// The caller owns the deadline; cancellation surfaces as an error here and
// degrades into a fallback result upstream.
func (c *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	genConfig := &genai.GenerateContentConfig{
		Temperature: genai.Ptr(float32(0.1)),
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), genConfig)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(result.Candidates) == 0 ||
		result.Candidates[0].Content == nil ||
		len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty model response")
	}

	text := result.Text()
	c.logger.Debug().Str("model", c.model).Int("chars", len(text)).Msg("model responded")
	return text, nil
}
