package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mortar_runs_total",
			Help: "Total number of solver runs by outcome",
		},
		[]string{"outcome"},
	)

	candidateCount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortar_candidate_potions",
			Help:    "Number of candidate potions generated per run",
			Buckets: prometheus.ExponentialBuckets(16, 4, 10),
		},
	)

	universeSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortar_universe_facts",
			Help:    "Number of ingredient/effect facts to cover per run",
			Buckets: prometheus.ExponentialBuckets(8, 4, 10),
		},
	)

	coverSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortar_cover_potions",
			Help:    "Number of potions chosen to cover the universe",
			Buckets: prometheus.ExponentialBuckets(4, 2, 12),
		},
	)

	solveDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mortar_solve_duration_seconds",
			Help:    "Wall time of the greedy cover solve",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// RecordRun counts a completed run by outcome ("success" or "failure").
func RecordRun(success bool) {
	outcome := "success"
	if !success {
		outcome = "failure"
	}
	runsTotal.WithLabelValues(outcome).Inc()
}

// RecordProblemSize observes the generated candidate count and fact
// universe size for a run.
func RecordProblemSize(candidates, universe int) {
	candidateCount.Observe(float64(candidates))
	universeSize.Observe(float64(universe))
}

// RecordCover observes the chosen cover size and solve duration.
func RecordCover(chosen int, duration time.Duration) {
	coverSize.Observe(float64(chosen))
	solveDuration.Observe(duration.Seconds())
}
