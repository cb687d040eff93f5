// Package metrics holds the prometheus collectors of go-family-tree.
//
// Collectors are registered with the default registry on package init and
// exposed by the /metrics route.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// AI call outcomes.
const (
	OutcomeSuccess       = "success"
	OutcomeRequestFailed = "request_failed"
	OutcomeParseFailed   = "parse_failed"
	OutcomePersistFailed = "persist_failed"
)

var (
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "familytree_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "familytree_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// AI metrics
	aiCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "familytree_ai_calls_total",
			Help: "Total number of AI operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	aiCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "familytree_ai_call_duration_seconds",
			Help:    "Upstream AI call latency in seconds",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 20, 30, 60, 120},
		},
		[]string{"operation"},
	)

	aiTokensTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "familytree_ai_tokens_total",
			Help: "Total tokens reported by the AI endpoint",
		},
		[]string{"operation"},
	)
)

// ObserveHTTPRequest records one served request. path should be the route
// pattern, not the raw URL, to keep label cardinality bounded.
func ObserveHTTPRequest(method, path string, status int, d time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveAICall records one AI operation. d is the upstream latency; it is
// skipped when zero (the call never left the process). tokens may be nil.
func ObserveAICall(operation, outcome string, d time.Duration, tokens *int) {
	aiCallsTotal.WithLabelValues(operation, outcome).Inc()
	if d > 0 {
		aiCallDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
	if tokens != nil && *tokens > 0 {
		aiTokensTotal.WithLabelValues(operation).Add(float64(*tokens))
	}
}
