// Package horoscope runs the page generation pipeline: draw a sign, load the
// page and prompt, ask the generator, inject the answer.
package horoscope

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/joestump/horoscope/internal/llm"
	"github.com/joestump/horoscope/internal/metrics"
	"github.com/joestump/horoscope/internal/page"
	"github.com/joestump/horoscope/internal/prompt"
	"github.com/joestump/horoscope/internal/zodiac"
)

// Options configures a Service.
type Options struct {
	TemplatePath string
	PromptPath   string
	Escape       bool

	// Source overrides the sign draw. Nil uses math/rand/v2.
	Source zodiac.Source
	Logger *zap.Logger
}

// Service generates horoscope pages. It keeps no state between calls: every
// Generate re-reads both files and makes its own generator call.
type Service struct {
	gen  llm.Generator
	opts Options
	log  *zap.Logger
}

// Result describes one successful generation.
type Result struct {
	RequestID string
	Sign      zodiac.Sign
	Document  string
	Elapsed   time.Duration
}

// NewService creates a Service backed by gen.
func NewService(gen llm.Generator, opts Options) *Service {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{gen: gen, opts: opts, log: log}
}

// Generate draws a sign and renders the page for it.
func (s *Service) Generate(ctx context.Context) (*Result, error) {
	return s.GenerateFor(ctx, zodiac.Pick(s.opts.Source))
}

// GenerateFor renders the page for a given sign.
func (s *Service) GenerateFor(ctx context.Context, sign zodiac.Sign) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	log := s.log.With(zap.String("request_id", id), zap.String("sign", sign.String()))

	metrics.SignsDrawnTotal.WithLabelValues(sign.String()).Inc()

	doc, err := s.render(ctx, sign)
	elapsed := time.Since(start)
	metrics.GenerationDuration.Observe(elapsed.Seconds())
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues("error").Inc()
		log.Error("horoscope generation failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return nil, err
	}

	metrics.GenerationsTotal.WithLabelValues("ok").Inc()
	log.Info("horoscope generated", zap.Int("bytes", len(doc)), zap.Duration("elapsed", elapsed))
	return &Result{RequestID: id, Sign: sign, Document: doc, Elapsed: elapsed}, nil
}

func (s *Service) render(ctx context.Context, sign zodiac.Sign) (string, error) {
	doc, err := page.Load(s.opts.TemplatePath)
	if err != nil {
		return "", err
	}
	if !page.HasMarker(doc) {
		s.log.Warn("template has no injection marker", zap.String("path", s.opts.TemplatePath))
	}

	tmpl, err := prompt.Load(s.opts.PromptPath)
	if err != nil {
		return "", err
	}
	p, err := prompt.Build(tmpl, sign)
	if err != nil {
		return "", fmt.Errorf("build prompt: %w", err)
	}

	text, err := s.gen.Generate(ctx, p)
	if err != nil {
		return "", err
	}

	return page.Render(doc, text, s.opts.Escape), nil
}
