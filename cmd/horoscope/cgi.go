package main

import (
	"context"
	"io"
	"net/http/cgi"

	"go.uber.org/zap"

	"github.com/joestump/horoscope/internal/config"
	"github.com/joestump/horoscope/internal/horoscope"
	"github.com/joestump/horoscope/internal/llm"
	"github.com/joestump/horoscope/internal/logging"
)

// serveCGI handles exactly one CGI request. Every failure, configuration
// included, ends as the fixed 500 response on out; the returned error is only
// set when out itself cannot be written.
func serveCGI(ctx context.Context, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load()
	if err != nil {
		logging.New("error", "json").Error("load config", zap.Error(err))
		return horoscope.WriteCGI(out, "", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = logger.Sync() }()

	if req, rerr := cgi.Request(); rerr == nil {
		logger = logger.With(
			zap.String("method", req.Method),
			zap.String("uri", req.URL.RequestURI()),
			zap.String("remote_addr", req.RemoteAddr),
		)
	}

	gen, err := llm.New(ctx, cfg)
	if err != nil {
		logger.Error("create generator", zap.Error(err))
		return horoscope.WriteCGI(out, "", err)
	}

	svc := horoscope.NewService(gen, horoscope.Options{
		TemplatePath: cfg.Template.Path,
		PromptPath:   cfg.Prompt.Path,
		Escape:       cfg.Render.Escape,
		Logger:       logger,
	})
	if err := svc.RunCGI(ctx, out); err != nil {
		logger.Error("write cgi response", zap.Error(err))
	}
	return nil
}
