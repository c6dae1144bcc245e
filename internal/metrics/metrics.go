// Package metrics provides Prometheus metrics for npd-cli.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RunsTotal counts analysis runs.
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npd",
			Name:      "runs_total",
			Help:      "Total number of analysis runs",
		},
		[]string{"brand", "mode"},
	)

	// SignalsTotal counts signals by pipeline outcome.
	SignalsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npd",
			Name:      "signals_total",
			Help:      "Total number of signals processed by outcome",
		},
		[]string{"brand", "outcome"},
	)

	// BriefsTotal counts emitted briefs by opportunity type.
	BriefsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npd",
			Name:      "briefs_total",
			Help:      "Total number of briefs emitted",
		},
		[]string{"brand", "opportunity_type"},
	)

	// LiveSearchTotal counts live search attempts by signal source.
	LiveSearchTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "npd",
			Name:      "live_search_total",
			Help:      "Total number of live searches by signal source",
		},
		[]string{"brand", "source"},
	)

	// HTTPDuration measures API request duration.
	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "npd",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route", "status"},
	)
)

// Signal outcomes.
const (
	OutcomeRejected  = "rejected"
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
)

// RecordRun records one completed analysis run and its briefs by type.
func RecordRun(brand, mode string, briefsByType map[string]int) {
	RunsTotal.WithLabelValues(brand, mode).Inc()
	for typ, n := range briefsByType {
		BriefsTotal.WithLabelValues(brand, typ).Add(float64(n))
	}
}

// RecordSignals records signal counts for one run.
func RecordSignals(brand string, rejected, matched, unmatched int) {
	SignalsTotal.WithLabelValues(brand, OutcomeRejected).Add(float64(rejected))
	SignalsTotal.WithLabelValues(brand, OutcomeMatched).Add(float64(matched))
	SignalsTotal.WithLabelValues(brand, OutcomeUnmatched).Add(float64(unmatched))
}

// RecordLiveSearch records which source fed a live scan.
func RecordLiveSearch(brand, source string) {
	LiveSearchTotal.WithLabelValues(brand, source).Inc()
}

// RecordHTTP records an API request.
func RecordHTTP(route, status string, seconds float64) {
	HTTPDuration.WithLabelValues(route, status).Observe(seconds)
}
