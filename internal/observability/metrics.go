package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	PuzzlesGenerated *prometheus.CounterVec
	GenerateSeconds  prometheus.Histogram
	SolveSeconds     prometheus.Histogram
	SolveNodes       prometheus.Histogram
	WinChecks        *prometheus.CounterVec
}

// NewMetrics registers the engine collectors with reg. Pass a fresh
// prometheus.NewRegistry() in tests to avoid duplicate registration.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		PuzzlesGenerated: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brainbreak",
			Subsystem: "engine",
			Name:      "puzzles_generated_total",
			Help:      "Puzzles generated, by difficulty.",
		}, []string{"difficulty"}),
		GenerateSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brainbreak",
			Subsystem: "engine",
			Name:      "generate_duration_seconds",
			Help:      "Wall time of puzzle generation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		SolveSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brainbreak",
			Subsystem: "engine",
			Name:      "solve_duration_seconds",
			Help:      "Wall time of grid completion.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
		SolveNodes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "brainbreak",
			Subsystem: "engine",
			Name:      "solve_nodes",
			Help:      "Digits tried per backtracking search.",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
		WinChecks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brainbreak",
			Subsystem: "engine",
			Name:      "win_checks_total",
			Help:      "Win checks, by outcome.",
		}, []string{"outcome"}),
	}
}
