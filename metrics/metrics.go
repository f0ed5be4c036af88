// Package metrics provides Prometheus metrics for the Nuclino MCP server.
// It tracks tool calls, Nuclino API round trips, latencies, and error rates.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Namespace for all metrics
const (
	Namespace = "nuclino_mcp"
)

var (
	// RequestsTotal counts total MCP tool calls by tool name and status
	RequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "requests_total",
		Help:      "Total number of MCP tool calls",
	}, []string{"tool", "status"})

	// RequestDuration measures request latency distribution
	RequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "request_duration_seconds",
		Help:      "Request latency distribution by tool",
		Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"tool"})

	// RequestInFlight tracks currently executing requests
	RequestInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: Namespace,
		Name:      "requests_in_flight",
		Help:      "Number of requests currently being processed",
	}, []string{"tool"})

	// PanicsRecovered counts recovered panics
	PanicsRecovered = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "panics_recovered_total",
		Help:      "Number of panics recovered in tool handlers",
	}, []string{"tool"})

	// APIRequestsTotal counts Nuclino API round trips
	APIRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_requests_total",
		Help:      "Total Nuclino API requests by route, method and HTTP status",
	}, []string{"route", "method", "status"})

	// APILatency measures Nuclino API call latency
	APILatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "api_latency_seconds",
		Help:      "Nuclino API call latency by route and method",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	// APIErrors counts failed calls by error kind
	APIErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "api_errors_total",
		Help:      "Nuclino API errors by route and error kind",
	}, []string{"route", "kind"})

	// ResponseSize tracks response body sizes
	ResponseSize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: Namespace,
		Name:      "response_size_bytes",
		Help:      "Response body size distribution in bytes",
		Buckets:   []float64{100, 1000, 10000, 50000, 100000, 250000, 500000, 1000000},
	}, []string{"route"})

	// PageWrites counts page create, update and delete operations
	PageWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: Namespace,
		Name:      "page_writes_total",
		Help:      "Page write operations by operation and status",
	}, []string{"operation", "status"})
)

// RecordRequest records a completed request with its duration and status
func RecordRequest(tool string, duration float64, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	RequestsTotal.WithLabelValues(tool, status).Inc()
	RequestDuration.WithLabelValues(tool).Observe(duration)
}

// RecordAPICall records a Nuclino API round trip. status is the HTTP status
// code as text, or "transport_error" when no response arrived.
func RecordAPICall(route, method string, duration float64, status string) {
	APIRequestsTotal.WithLabelValues(route, method, status).Inc()
	APILatency.WithLabelValues(route, method).Observe(duration)
}

// RecordAPIError records a failed call classified by error kind
func RecordAPIError(route, kind string) {
	APIErrors.WithLabelValues(route, kind).Inc()
}

// RecordPageWrite records a page mutation
func RecordPageWrite(operation string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	PageWrites.WithLabelValues(operation, status).Inc()
}
