package server

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus metrics exposed on /metrics.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec // labels: endpoint, status
	RequestDuration prometheus.Histogram
	UpstreamErrors  prometheus.Counter
}

// NewMetrics registers and returns all Prometheus metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stockscope_requests_total",
			Help: "Total HTTP requests served (by endpoint and status code)",
		}, []string{"endpoint", "status"}),
		RequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stockscope_request_duration_seconds",
			Help:    "HTTP request latency including upstream fetches",
			Buckets: prometheus.DefBuckets,
		}),
		UpstreamErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "stockscope_upstream_errors_total",
			Help: "Failed market data provider calls",
		}),
	}

	prometheus.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.UpstreamErrors,
	)
	return m
}
