package capitol

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollector provides Prometheus metrics for the client's request
// lifecycle. It is safe for concurrent use. The operation label is the
// logical endpoint (member, members, committee, committees, bill), not the
// raw URL, so cardinality stays bounded.
type MetricsCollector struct {
	requestsTotal    *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	requestsInFlight *prometheus.GaugeVec

	errorsTotal      *prometheus.CounterVec
	rateLimitDenials *prometheus.CounterVec
}

// NewMetricsCollector creates a metrics collector on the default registerer.
func NewMetricsCollector() *MetricsCollector {
	return NewMetricsCollectorWithRegistry(prometheus.DefaultRegisterer)
}

// NewMetricsCollectorWithRegistry creates a metrics collector on a
// caller-owned registerer.
func NewMetricsCollectorWithRegistry(registerer prometheus.Registerer) *MetricsCollector {
	factory := promauto.With(registerer)

	return &MetricsCollector{
		requestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitol_requests_total",
				Help: "Total outbound requests by operation and HTTP status.",
			},
			[]string{"operation", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "capitol_request_duration_seconds",
				Help:    "Outbound request duration by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		requestsInFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "capitol_requests_in_flight",
				Help: "Outbound requests currently in flight by operation.",
			},
			[]string{"operation"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitol_errors_total",
				Help: "Total failures by error type and operation.",
			},
			[]string{"type", "operation"},
		),
		rateLimitDenials: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "capitol_rate_limit_denials_total",
				Help: "Requests denied by the rate-limit guard before dispatch.",
			},
			[]string{"operation"},
		),
	}
}

// RecordRequestStart marks a request as in flight.
func (m *MetricsCollector) RecordRequestStart(operation string) {
	m.requestsInFlight.WithLabelValues(operation).Inc()
}

// RecordRequestEnd marks a request as no longer in flight.
func (m *MetricsCollector) RecordRequestEnd(operation string) {
	m.requestsInFlight.WithLabelValues(operation).Dec()
}

// RecordRequest records a completed dispatch attempt. statusCode 0 means the
// request never produced a response.
func (m *MetricsCollector) RecordRequest(operation string, statusCode int, duration time.Duration) {
	m.requestsTotal.WithLabelValues(operation, strconv.Itoa(statusCode)).Inc()
	m.requestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordError records a failure of the given error type.
func (m *MetricsCollector) RecordError(errorType, operation string) {
	m.errorsTotal.WithLabelValues(errorType, operation).Inc()
}

// RecordRateLimitDenial records a request denied by the rate-limit guard.
func (m *MetricsCollector) RecordRateLimitDenial(operation string) {
	m.rateLimitDenials.WithLabelValues(operation).Inc()
}
