package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Generator Generator
	Logger    *zap.Logger
}

// NewRouter assembles the chi router with middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	h := NewHoroscopeHandler(deps.Generator, deps.Logger)

	// The CGI path is kept so links written for the CGI deployment keep
	// working behind the standalone server.
	r.Get("/", h.Show)
	r.Get("/cgi-bin/horoscope", h.Show)

	r.Get("/healthz", Healthz)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
