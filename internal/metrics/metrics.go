// Package metrics exposes Prometheus instrumentation for the HTTP surface
// and the AI backend calls.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry collects every metric the service publishes. One instance per
// process; handed to the server at construction.
type Registry struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	backendCalls    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	fallbacks       *prometheus.CounterVec
}

// NewRegistry builds a registry with all series pre-registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		registry: reg,
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by route, method and status code.",
		}, []string{"route", "method", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "brandlens",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"route"}),
		backendCalls: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "backend",
			Name:      "calls_total",
			Help:      "AI backend calls by provider, operation and outcome.",
		}, []string{"provider", "operation", "outcome"}),
		backendDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "brandlens",
			Subsystem: "backend",
			Name:      "call_duration_seconds",
			Help:      "AI backend call latency by provider and operation.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"provider", "operation"}),
		fallbacks: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "brandlens",
			Subsystem: "backend",
			Name:      "fallbacks_total",
			Help:      "Static fallbacks served in place of backend output, by operation.",
		}, []string{"operation"}),
	}
}

// ObserveBackendCall records one backend call.
func (r *Registry) ObserveBackendCall(provider, operation string, elapsed time.Duration, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.backendCalls.WithLabelValues(provider, operation, outcome).Inc()
	r.backendDuration.WithLabelValues(provider, operation).Observe(elapsed.Seconds())
}

// CountFallback records one static fallback served for an operation.
func (r *Registry) CountFallback(operation string) {
	r.fallbacks.WithLabelValues(operation).Inc()
}

// Middleware instruments every request passing through the gin engine.
func (r *Registry) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		r.httpRequests.WithLabelValues(route, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler serves the scrape endpoint for this registry only.
func (r *Registry) Handler() gin.HandlerFunc {
	h := promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
	return gin.WrapH(h)
}
