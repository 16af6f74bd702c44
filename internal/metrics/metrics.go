// Package metrics holds the Prometheus collectors of the secure storage
// daemon: RPC requests per transport, item store operations, orphaned key
// sweeps and value log garbage collection.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "secure_storage"

// CodeOK labels successful calls next to the four error codes.
const CodeOK = "ok"

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	requestsTotal     *prometheus.CounterVec
	requestDuration   *prometheus.HistogramVec
	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	keysSwept         prometheus.Counter
	gcRunsTotal       *prometheus.CounterVec
}

// NewMetrics creates a metrics instance on its own registry, with the Go
// runtime and process collectors attached.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return NewMetricsWithRegistry(reg)
}

// NewMetricsWithRegistry creates a metrics instance registered on reg (for testing).
func NewMetricsWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		registry: reg,
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of storage RPC requests",
			},
			[]string{"transport", "rpc", "code"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "rpc_request_duration_seconds",
				Help:      "Storage RPC request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"transport", "rpc"},
		),
		operationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "item_operations_total",
				Help:      "Total number of item store operations",
			},
			[]string{"operation", "code"},
		),
		operationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "item_operation_duration_seconds",
				Help:      "Item store operation duration in seconds",
				Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"operation"},
		),
		keysSwept: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "orphaned_keys_swept_total",
				Help:      "Total number of secret keys deleted because no entry used them",
			},
		),
		gcRunsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "value_log_gc_runs_total",
				Help:      "Total number of value log garbage collection runs",
			},
			[]string{"result"},
		),
	}
}

// RecordRequest records one RPC served by transport ("http" or "grpc").
func (m *Metrics) RecordRequest(transport, rpc, code string, duration time.Duration) {
	m.requestsTotal.WithLabelValues(transport, rpc, code).Inc()
	m.requestDuration.WithLabelValues(transport, rpc).Observe(duration.Seconds())
}

// RecordOperation records one item store operation.
func (m *Metrics) RecordOperation(operation, code string, duration time.Duration) {
	m.operationsTotal.WithLabelValues(operation, code).Inc()
	m.operationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordKeysSwept adds n deleted orphaned keys.
func (m *Metrics) RecordKeysSwept(n int) {
	if n > 0 {
		m.keysSwept.Add(float64(n))
	}
}

// RecordGC records a garbage collection run.
func (m *Metrics) RecordGC(err error) {
	m.gcRunsTotal.WithLabelValues(strconv.FormatBool(err == nil)).Inc()
}

// Handler returns the HTTP handler exposing the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
