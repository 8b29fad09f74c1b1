package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/joestump/horoscope/internal/config"
	"github.com/joestump/horoscope/internal/handler"
	"github.com/joestump/horoscope/internal/horoscope"
	"github.com/joestump/horoscope/internal/llm"
	"github.com/joestump/horoscope/internal/logging"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve horoscope pages over HTTP instead of CGI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			logger := logging.New(cfg.Log.Level, cfg.Log.Format)
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			gen, err := llm.New(ctx, cfg)
			if err != nil {
				return err
			}

			// The service holds no per-request state, so one instance is
			// shared by all requests.
			svc := horoscope.NewService(gen, horoscope.Options{
				TemplatePath: cfg.Template.Path,
				PromptPath:   cfg.Prompt.Path,
				Escape:       cfg.Render.Escape,
				Logger:       logger,
			})

			srv := &http.Server{
				Addr:              cfg.HTTP.Addr,
				Handler:           handler.NewRouter(handler.Deps{Generator: svc, Logger: logger}),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("listening", zap.String("addr", cfg.HTTP.Addr))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-ctx.Done():
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			}
		},
	}
}
