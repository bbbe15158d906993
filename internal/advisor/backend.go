// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"
	"google.golang.org/genai"

	"github.com/pdiddy/research-assistant/internal/httputil"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// Request is one generation call.
type Request struct {
	System      string
	Prompt      string
	Temperature float32
	// Search enables the model's web-search grounding tool.
	Search bool
}

// Backend produces a Markdown response for a request.
type Backend interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// GeminiBackend calls the Gemini API through google.golang.org/genai.
type GeminiBackend struct {
	client *genai.Client
	model  string
}

// NewGeminiBackend creates a backend from cfg. The HTTP client throttles to
// cfg.RequestsPerMinute and retries HTTP 429 responses.
func NewGeminiBackend(ctx context.Context, cfg types.AIConfig, log zerolog.Logger) (*GeminiBackend, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: no Gemini API key configured (set GEMINI_API_KEY or .secrets/gemini-api-key)", ErrAuth)
	}

	transport := &httputil.RetryTransport{
		MaxRetries: cfg.MaxRetries,
		Limiter:    httputil.NewLimiter(cfg.RequestsPerMinute),
		Log:        log,
	}
	hc := &http.Client{Transport: transport, Timeout: cfg.Timeout}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}
	return &GeminiBackend{client: client, model: cfg.Model}, nil
}

// Generate implements Backend.
func (b *GeminiBackend) Generate(ctx context.Context, req Request) (string, error) {
	temperature := req.Temperature
	config := &genai.GenerateContentConfig{Temperature: &temperature}
	if req.System != "" {
		config.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}
	if req.Search {
		config.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	contents := []*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)}
	resp, err := b.client.Models.GenerateContent(ctx, b.model, contents, config)
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: %s", apiKind(apiErr.Code), apiErr.Message)
		}
		return "", err
	}
	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: %s", ErrContentBlocked, resp.PromptFeedback.BlockReason)
	}
	return resp.Text(), nil
}

func apiKind(code int) error {
	switch code {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrAuth
	case http.StatusTooManyRequests:
		return ErrRateLimit
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return ErrNetwork
	}
	return ErrRequest
}
