// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the JavaConnect API.
package observability

import (
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrorRate counts Redis errors by operation type.
	RedisErrorRate = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "javaconnect_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "javaconnect_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// FlagsSubmitted counts moderation flags created, by target type.
	FlagsSubmitted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "javaconnect_flags_submitted_total",
		Help: "Total moderation flags submitted by target type",
	}, []string{"target"})
)

// InitMetrics creates the Prometheus middleware for the given service name.
func InitMetrics(service string) *fiberprometheus.FiberPrometheus {
	return fiberprometheus.New(service)
}

// TrackQuery returns a function that records query latency when called (e.g. defer).
func TrackQuery(operation, table string) func() {
	start := time.Now()
	return func() {
		DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
	}
}
