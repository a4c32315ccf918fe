package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TurnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathbrain_turns_total",
		Help: "Dialogue turns answered, by resulting scenario and dispatch route",
	}, []string{"scenario", "route"})

	TurnLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "mathbrain_turn_latency_seconds",
		Help:    "Time to answer one webhook call",
		Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
	})

	ReplyCacheTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathbrain_reply_cache_total",
		Help: "Reply cache lookups by result: hit, miss, error",
	}, []string{"result"})

	BadRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "mathbrain_bad_requests_total",
		Help: "Webhook calls rejected before reaching the dialogue",
	}, []string{"reason"})
)

// ObserveTurn records one answered turn.
func ObserveTurn(scenario, route string, took time.Duration) {
	TurnsTotal.WithLabelValues(scenario, route).Inc()
	TurnLatency.Observe(took.Seconds())
}
