package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/joestump/horoscope/internal/config"
)

type geminiGenerator struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func newGeminiGenerator(ctx context.Context, cfg *config.Config) (*geminiGenerator, error) {
	if cfg.Gemini.APIKey == "" {
		return nil, errors.New("gemini API key is required")
	}
	model := cfg.Gemini.Model
	if model == "" {
		model = config.DefaultModel
	}

	cc := &genai.ClientConfig{
		APIKey:     cfg.Gemini.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: &http.Client{},
	}
	if cfg.Gemini.BaseURL != "" {
		cc.HTTPOptions.BaseURL = strings.TrimRight(cfg.Gemini.BaseURL, "/") + "/"
	}

	client, err := genai.NewClient(ctx, cc)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &geminiGenerator{
		client:  client,
		model:   model,
		timeout: cfg.Gemini.Timeout,
	}, nil
}

// Generate performs a single generateContent round trip. There is no retry.
func (g *geminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: empty prompt", ErrGeneration)
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("%w: gemini request: %w", ErrGeneration, err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked: %s", ErrGeneration, resp.PromptFeedback.BlockReason)
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty response from gemini", ErrGeneration)
	}
	return text, nil
}
