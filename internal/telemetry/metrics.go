package telemetry

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// TrialsTotal counts completed trials by outcome ("ok" or "error").
	TrialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "phspbench_trials_total",
			Help: "Total number of benchmark trials executed",
		},
		[]string{"outcome"},
	)

	// TrialDuration observes the wall-clock duration of each trial.
	TrialDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "phspbench_trial_duration_seconds",
			Help:    "Wall-clock duration of one benchmark trial",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 14),
		},
	)

	// LastMeanMs reports the most recent batch mean per timing column.
	LastMeanMs = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "phspbench_last_mean_ms",
			Help: "Mean of the last completed batch, in milliseconds",
		},
		[]string{"column"},
	)
)

// ObserveTrial records one trial's duration and outcome.
func ObserveTrial(d time.Duration, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	TrialsTotal.WithLabelValues(outcome).Inc()
	TrialDuration.Observe(d.Seconds())
}

// RecordBatchMeans publishes the summary means of a completed batch.
func RecordBatchMeans(generateMs, copyMs float64) {
	LastMeanMs.WithLabelValues("generate").Set(generateMs)
	LastMeanMs.WithLabelValues("copy").Set(copyMs)
}

// StartMetricsServer exposes Prometheus metrics on /metrics. It blocks, so
// callers run it in a goroutine. Useful for long overnight batches.
func StartMetricsServer(port int) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}
