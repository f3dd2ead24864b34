// Package metrics exposes Prometheus collectors on a private registry.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "brandvault"

// Metrics is safe to use as a nil pointer; every recorder becomes a no-op.
type Metrics struct {
	registry *prometheus.Registry

	RequestCount    *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	AccessRequests       *prometheus.CounterVec
	AssetUploads         *prometheus.CounterVec
	NotificationsCreated *prometheus.CounterVec
	RateLimited          *prometheus.CounterVec
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		AccessRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "access_requests",
				Name:      "transitions_total",
				Help:      "Access requests created or decided, by resulting status",
			},
			[]string{"status"},
		),
		AssetUploads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "assets",
				Name:      "uploads_total",
				Help:      "Accepted asset uploads by category",
			},
			[]string{"category"},
		),
		NotificationsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "notifications",
				Name:      "created_total",
				Help:      "Notifications persisted by type",
			},
			[]string{"type"},
		),
		RateLimited: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "rate_limited_total",
				Help:      "Requests rejected by the rate limiter",
			},
			[]string{"route"},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.RequestCount,
		m.RequestDuration,
		m.AccessRequests,
		m.AssetUploads,
		m.NotificationsCreated,
		m.RateLimited,
	)
	return m
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.RequestCount.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (m *Metrics) AccessRequestTransition(status string) {
	if m == nil {
		return
	}
	m.AccessRequests.WithLabelValues(status).Inc()
}

func (m *Metrics) AssetUploaded(category string) {
	if m == nil {
		return
	}
	m.AssetUploads.WithLabelValues(category).Inc()
}

func (m *Metrics) NotificationsPersisted(ntype string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.NotificationsCreated.WithLabelValues(ntype).Add(float64(n))
}

func (m *Metrics) RateLimitHit(route string) {
	if m == nil {
		return
	}
	m.RateLimited.WithLabelValues(route).Inc()
}
