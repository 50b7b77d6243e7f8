// Package metrics holds the Prometheus collectors for provider operations
// and snapshot persistence.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	operations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "splitbeam",
			Subsystem: "provider",
			Name:      "operations_total",
			Help:      "Total number of provider operations by outcome.",
		},
		[]string{"group", "op", "outcome"},
	)

	operationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "splitbeam",
			Subsystem: "provider",
			Name:      "operation_duration_seconds",
			Help:      "Duration of provider operations.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), // 10µs to ~2.6s
		},
		[]string{"group", "op"},
	)

	stateSaves = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "splitbeam",
			Subsystem: "state",
			Name:      "saves_total",
			Help:      "Total number of snapshot writes by outcome.",
		},
		[]string{"outcome"},
	)

	snapshotBytes = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "splitbeam",
			Subsystem: "state",
			Name:      "snapshot_bytes",
			Help:      "Size of the last persisted snapshot.",
		},
	)
)

func init() {
	Registry.MustRegister(operations, operationDuration, stateSaves, snapshotBytes)
}

// Handler returns an HTTP handler exposing the registry.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RecordOperation records one provider call.
func RecordOperation(group, op, outcome string, duration time.Duration) {
	operations.WithLabelValues(group, op, outcome).Inc()
	operationDuration.WithLabelValues(group, op).Observe(duration.Seconds())
}

// RecordSave records one snapshot write attempt of size bytes.
func RecordSave(ok bool, size int) {
	if !ok {
		stateSaves.WithLabelValues("error").Inc()
		return
	}
	stateSaves.WithLabelValues("ok").Inc()
	snapshotBytes.Set(float64(size))
}
