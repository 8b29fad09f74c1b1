package llm

import (
	"context"
	"errors"

	"github.com/joestump/horoscope/internal/config"
)

// ErrGeneration wraps every failure of a Generate call. Callers are not
// expected to tell transport, quota or content errors apart.
var ErrGeneration = errors.New("content generation failed")

// Generator produces text for a prompt through a remote model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, prompt string) (string, error)

func (f GeneratorFunc) Generate(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}

// New creates the Gemini-backed Generator described by cfg.
func New(ctx context.Context, cfg *config.Config) (Generator, error) {
	return newGeminiGenerator(ctx, cfg)
}
