// Package metrics exposes the service's Prometheus collectors. Everything is
// registered on the default registry and served by promhttp on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts answered questions by response code.
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_requests_total",
		Help: "Questions answered, labeled by response code.",
	}, []string{"code"})

	// RequestDuration observes end-to-end question latency in seconds.
	RequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "chatbot_request_duration_seconds",
		Help:    "End-to-end latency of answered questions.",
		Buckets: prometheus.DefBuckets,
	})

	// CacheHits counts answers served straight from the response cache.
	CacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_cache_hits_total",
		Help: "Answers served from the response cache.",
	})

	// CacheMisses counts questions that ran the full pipeline.
	CacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chatbot_cache_misses_total",
		Help: "Questions that missed the response cache.",
	})

	// LLMCalls counts model invocations by pipeline stage and outcome.
	LLMCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chatbot_llm_calls_total",
		Help: "Model invocations, labeled by pipeline stage and outcome.",
	}, []string{"stage", "outcome"})
)
