// Package metrics owns the Prometheus registry: HTTP request metrics, word lookup
// counters and delimiter pack reloads
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"wordbound/internal/platform/net/middleware"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Collector groups the service metrics under one private registry
type Collector struct {
	registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
	Lookups      *prometheus.CounterVec
	PackReloads  *prometheus.CounterVec
}

// New builds a Collector whose metrics live under namespace
func New(namespace string) *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"method", "route"}),
		Lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "word_lookups_total",
			Help:      "Word analysis operations by operation, preset and outcome",
		}, []string{"op", "preset", "outcome"}),
		PackReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "delimiter_pack_reloads_total",
			Help:      "Delimiter pack hot reloads by result",
		}, []string{"result"}),
	}
	c.registry.MustRegister(
		c.HTTPRequests,
		c.HTTPDuration,
		c.Lookups,
		c.PackReloads,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return c
}

// Registry exposes the underlying registry, mostly for tests
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Lookup counts one word analysis. outcome is "found", "empty" or "error"
func (c *Collector) Lookup(op, preset, outcome string) {
	if c == nil {
		return
	}
	c.Lookups.WithLabelValues(op, preset, outcome).Inc()
}

// Reload counts a pack reload attempt
func (c *Collector) Reload(err error) {
	if c == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.PackReloads.WithLabelValues(result).Inc()
}

// Middleware records request count and latency keyed by the chi route pattern,
// which keeps label cardinality bounded
func (c *Collector) Middleware() middleware.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			route := middleware.RoutePattern(r)
			c.HTTPRequests.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
			c.HTTPDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
		})
	}
}
