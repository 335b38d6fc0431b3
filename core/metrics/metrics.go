// Package metrics exposes Prometheus counters and histograms for dispatched
// requests, HTTP traffic and tool invocations.
//
// Every Collector owns its registry, so several collectors (one per test, for
// instance) never collide on metric names:
//
//	m := metrics.New(metrics.WithNamespace("labkit"))
//	d := dispatch.New(routes, dispatch.WithMetrics(m))
//	mux.Handle("/metrics", m.Handler())
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

// Collector records request metrics on a private registry.
type Collector struct {
	namespace   string
	subsystem   string
	buckets     []float64
	constLabels map[string]string
	registry    *prometheus.Registry

	dispatchTotal    *prometheus.CounterVec
	dispatchDuration *prometheus.HistogramVec
	httpTotal        *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	toolTotal        *prometheus.CounterVec
}

// New creates a collector and registers its metrics.
func New(opts ...Option) *Collector {
	c := &Collector{
		namespace: "labkit",
		buckets:   prometheus.DefBuckets,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.registry == nil {
		c.registry = prometheus.NewRegistry()
		c.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	auto := promauto.With(c.registry)

	c.dispatchTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "dispatch_total",
		Help:        "Total number of dispatched requests by method, path and status",
		ConstLabels: c.constLabels,
	}, []string{"method", "path", "status"})

	c.dispatchDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "dispatch_duration_seconds",
		Help:        "Time spent binding, running and shaping a request",
		Buckets:     c.buckets,
		ConstLabels: c.constLabels,
	}, []string{"method", "path"})

	c.httpTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "http_requests_total",
		Help:        "Total number of HTTP requests by method, path and status",
		ConstLabels: c.constLabels,
	}, []string{"method", "path", "status"})

	c.httpDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "http_request_duration_seconds",
		Help:        "HTTP request latency",
		Buckets:     c.buckets,
		ConstLabels: c.constLabels,
	}, []string{"method", "path"})

	c.toolTotal = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace:   c.namespace,
		Subsystem:   c.subsystem,
		Name:        "tool_invocations_total",
		Help:        "Total number of tool invocations by tool and outcome",
		ConstLabels: c.constLabels,
	}, []string{"tool", "outcome"})

	return c
}

// ObserveDispatch records one dispatched request.
func (c *Collector) ObserveDispatch(method, path string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.dispatchTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.dispatchDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveHTTP records one HTTP request.
func (c *Collector) ObserveHTTP(method, path string, status int, d time.Duration) {
	if c == nil {
		return
	}
	c.httpTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(d.Seconds())
}

// ObserveTool records a tool invocation. Outcome is "ok", "error" or
// "not_found".
func (c *Collector) ObserveTool(tool, outcome string) {
	if c == nil {
		return
	}
	c.toolTotal.WithLabelValues(tool, outcome).Inc()
}

// Registry returns the collector's registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
