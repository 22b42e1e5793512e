// Package completion adapts an OpenAI-compatible chat endpoint into the
// single-shot Completer used by the locator, scorer and alternatives.
package completion

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"charm.land/fantasy"
	"charm.land/fantasy/providers/openaicompat"

	"policyguard/pkg/platform/sentinel"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
}

// Client sends one prompt per call with no conversation state.
type Client struct {
	model fantasy.LanguageModel
}

func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("API key is required for completion provider")
	}
	if cfg.Model == "" {
		return nil, errors.New("model is required for completion provider")
	}

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required for completion provider")
	}

	provider, err := openaicompat.New(
		openaicompat.WithBaseURL(cfg.BaseURL),
		openaicompat.WithAPIKey(cfg.APIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create completion provider: %w", err)
	}

	model, err := provider.LanguageModel(ctx, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create language model: %w", err)
	}
	return &Client{model: model}, nil
}

// Complete returns the trimmed reply. maxTokens <= 0 leaves the provider
// default. Calls are never retried.
func (c *Client) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	noRetries := 0
	call := fantasy.AgentCall{
		Prompt:      prompt,
		Temperature: &temperature,
		MaxRetries:  &noRetries,
	}
	if maxTokens > 0 {
		limit := int64(maxTokens)
		call.MaxOutputTokens = &limit
	}

	result, err := fantasy.NewAgent(c.model).Generate(ctx, call)
	if err != nil {
		return "", fmt.Errorf("completion failed: %w", err)
	}

	text := strings.TrimSpace(result.Response.Content.Text())
	if text == "" {
		return "", fmt.Errorf("completion: %w", sentinel.ErrEmptyResponse)
	}
	return text, nil
}
