package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/joestump/horoscope/internal/horoscope"
	"github.com/joestump/horoscope/internal/zodiac"
)

// Generator is the part of horoscope.Service the HTTP handler needs.
type Generator interface {
	Generate(ctx context.Context) (*horoscope.Result, error)
	GenerateFor(ctx context.Context, sign zodiac.Sign) (*horoscope.Result, error)
}

// HoroscopeHandler serves generated horoscope pages over plain HTTP.
type HoroscopeHandler struct {
	gen Generator
	log *zap.Logger
}

// NewHoroscopeHandler creates a new HoroscopeHandler.
func NewHoroscopeHandler(gen Generator, log *zap.Logger) *HoroscopeHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &HoroscopeHandler{gen: gen, log: log}
}

// Show serves GET /. Every request draws its own sign unless ?signe= names
// one, and runs the full pipeline.
func (h *HoroscopeHandler) Show(w http.ResponseWriter, r *http.Request) {
	var (
		res *horoscope.Result
		err error
	)
	if name := r.URL.Query().Get("signe"); name != "" {
		sign, perr := zodiac.Parse(name)
		if perr != nil {
			http.Error(w, "signe inconnu", http.StatusBadRequest)
			return
		}
		res, err = h.gen.GenerateFor(r.Context(), sign)
	} else {
		res, err = h.gen.Generate(r.Context())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err != nil {
		if errors.Is(err, context.Canceled) {
			h.log.Debug("client went away", zap.String("path", r.URL.Path))
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, horoscope.ErrorBody)
		return
	}
	w.Header().Set("X-Request-Id", res.RequestID)
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, res.Document)
}

// Healthz serves GET /healthz.
func Healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}
