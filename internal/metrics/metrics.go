package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector owns a private registry so tests can create as many as they like.
// A nil *Collector records nothing.
type Collector struct {
	registry         *prometheus.Registry
	upstreamRequests *prometheus.CounterVec
	upstreamDuration *prometheus.HistogramVec
	exports          *prometheus.CounterVec
	queueDepth       prometheus.Gauge
}

func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Collector{
		registry: registry,
		upstreamRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldops_upstream_requests_total",
			Help: "Requests made to the upstream microfinance API",
		}, []string{"endpoint", "method", "status"}),
		upstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fieldops_upstream_request_duration_seconds",
			Help:    "Time taken by upstream API requests",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint", "method"}),
		exports: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fieldops_exports_total",
			Help: "Exports rendered, by report kind, format and outcome",
		}, []string{"kind", "format", "status"}),
		queueDepth: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fieldops_export_queue_depth",
			Help: "Export jobs waiting for a worker",
		}),
	}
}

// RecordUpstream counts one upstream call. status is 0 when no response was
// received.
func (c *Collector) RecordUpstream(endpoint, method string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	c.upstreamRequests.WithLabelValues(endpoint, method, label).Inc()
	c.upstreamDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (c *Collector) RecordExport(kind, format, status string) {
	if c == nil {
		return
	}
	c.exports.WithLabelValues(kind, format, status).Inc()
}

func (c *Collector) SetQueueDepth(n int) {
	if c == nil {
		return
	}
	c.queueDepth.Set(float64(n))
}

func (c *Collector) Handler() http.Handler {
	if c == nil {
		return promhttp.HandlerFor(prometheus.NewRegistry(), promhttp.HandlerOpts{})
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
