package dispatch

import (
	"log/slog"

	"github.com/dmitrymomot/labkit/core/metrics"
)

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger sets the dispatcher's logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMiddleware appends middleware around every dispatch.
// Middleware run in the order given, the first being the outermost.
//
// Example:
//
//	d := dispatch.New(routes,
//		dispatch.WithMiddleware(dispatch.LoggingMiddleware(log)),
//	)
func WithMiddleware(mw ...Middleware) Option {
	return func(d *Dispatcher) {
		for _, m := range mw {
			if m != nil {
				d.middlewares = append(d.middlewares, m)
			}
		}
	}
}

// WithMetrics records every dispatch on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(d *Dispatcher) {
		if m != nil {
			d.middlewares = append(d.middlewares, MetricsMiddleware(m))
		}
	}
}
