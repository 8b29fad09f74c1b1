package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horoscope_generations_total",
		Help: "Horoscope page generations by outcome.",
	}, []string{"status"})

	GenerationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "horoscope_generation_duration_seconds",
		Help:    "Time to load, generate and render one page, including the Gemini call.",
		Buckets: []float64{0.25, 0.5, 1, 2, 4, 8, 15, 30, 60},
	})

	SignsDrawnTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "horoscope_signs_drawn_total",
		Help: "Signs selected for generation.",
	}, []string{"sign"})
)
