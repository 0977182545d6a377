// Package monitoring exposes the Prometheus metrics for the assistant
// pipeline.
package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// QueriesTotal counts chat queries by the intents they activated.
	QueriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skydesk_queries_total",
		Help: "Chat queries processed, labeled by activated intent.",
	}, []string{"intent"})

	// RetrievalsTotal counts retrieval outcomes by intent, tier and result.
	RetrievalsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skydesk_retrievals_total",
		Help: "Retrieval dispatches by intent, answering tier and outcome.",
	}, []string{"intent", "tier", "found"})

	// RetrievalDuration observes per-intent retrieval latency.
	RetrievalDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "skydesk_retrieval_duration_seconds",
		Help:    "Per-intent retrieval latency.",
		Buckets: prometheus.DefBuckets,
	}, []string{"intent"})

	// SynthesisDuration observes end-to-end answer synthesis latency.
	SynthesisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skydesk_synthesis_duration_seconds",
		Help:    "LLM answer synthesis latency.",
		Buckets: prometheus.DefBuckets,
	})

	// LLMFailuresTotal counts LLM call failures surfaced to users.
	LLMFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skydesk_llm_failures_total",
		Help: "LLM completion failures surfaced as apology messages.",
	})
)

// RecordRetrieval records one per-intent retrieval outcome.
func RecordRetrieval(intentName, tier string, found bool, took time.Duration) {
	foundLabel := "false"
	if found {
		foundLabel = "true"
	}
	RetrievalsTotal.WithLabelValues(intentName, tier, foundLabel).Inc()
	RetrievalDuration.WithLabelValues(intentName).Observe(took.Seconds())
}
