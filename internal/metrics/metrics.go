// Package metrics holds the Prometheus instruments for the recommendation
// pipeline and its three upstream services.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "soundtrack_upstream_request_duration_seconds",
			Help:    "Duration of outbound calls to the book catalog, music catalog and Gemini",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "outcome"},
	)

	ProfilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soundtrack_music_profiles_total",
			Help: "Music profiles produced, by source (ai or fallback) and fallback reason",
		},
		[]string{"source", "reason"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "soundtrack_recommendations_total",
			Help: "Recommendation requests by entry point and result",
		},
		[]string{"entry", "result"},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "soundtrack_circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// ObserveUpstream records one outbound call.
func ObserveUpstream(service string, start time.Time, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	UpstreamRequestDuration.WithLabelValues(service, outcome).Observe(time.Since(start).Seconds())
}
