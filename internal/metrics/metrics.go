// Package metrics exposes the module's Prometheus instrumentation: work
// generation duration and throughput, RPC call latency and outcome
// counts, and websocket connection/message counts.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	WorkSearchDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "nano",
		Subsystem: "pow",
		Name:      "search_duration_seconds",
		Help:      "Time spent searching for valid proof-of-work.",
		Buckets:   prometheus.ExponentialBuckets(0.01, 2, 16),
	})

	WorkNoncesScanned = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nano",
		Subsystem: "pow",
		Name:      "nonces_scanned_total",
		Help:      "Total proof-of-work nonces scanned across all searches.",
	})

	WorkSearchesCancelled = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "nano",
		Subsystem: "pow",
		Name:      "searches_cancelled_total",
		Help:      "Total proof-of-work searches cancelled before completion.",
	})

	RpcRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "nano",
		Subsystem: "rpc",
		Name:      "request_duration_seconds",
		Help:      "RPC request latency by action.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"action"})

	RpcRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nano",
		Subsystem: "rpc",
		Name:      "requests_total",
		Help:      "RPC requests by action and outcome.",
	}, []string{"action", "outcome"})

	WebSocketConnectionsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "nano",
		Subsystem: "ws",
		Name:      "connections_active",
		Help:      "Number of active websocket connections.",
	})

	WebSocketMessagesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "nano",
		Subsystem: "ws",
		Name:      "messages_received_total",
		Help:      "Websocket messages received by topic.",
	}, []string{"topic"})
)

func init() {
	prometheus.MustRegister(
		WorkSearchDuration,
		WorkNoncesScanned,
		WorkSearchesCancelled,
		RpcRequestDuration,
		RpcRequestsTotal,
		WebSocketConnectionsActive,
		WebSocketMessagesReceived,
	)
}

// Handler returns an HTTP handler for the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
