package dispatch

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/labkit/core/logger"
	"github.com/dmitrymomot/labkit/core/metrics"
	"github.com/dmitrymomot/labkit/core/response"
)

// Middleware wraps a DispatchFunc to add cross-cutting behavior.
type Middleware func(next DispatchFunc) DispatchFunc

// LoggingMiddleware logs every dispatch with its route, status and duration.
//
// Example:
//
//	d := dispatch.New(routes,
//		dispatch.WithMiddleware(dispatch.LoggingMiddleware(log)),
//	)
func LoggingMiddleware(log *slog.Logger) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, method, path string, payload map[string]any) (response.Envelope, error) {
			start := time.Now()

			log.DebugContext(ctx, "dispatch started", logger.Route(method, path))

			env, err := next(ctx, method, path, payload)
			if err != nil {
				log.ErrorContext(ctx, "dispatch failed",
					logger.Route(method, path),
					logger.Duration(time.Since(start)),
					logger.Error(err))
				return env, err
			}

			log.InfoContext(ctx, "dispatch completed",
				logger.Route(method, path),
				logger.StatusCode(env.Status),
				logger.Duration(time.Since(start)))

			return env, nil
		}
	}
}

// MetricsMiddleware records dispatch counts and latency on m. Propagated
// errors are counted as 500.
func MetricsMiddleware(m *metrics.Collector) Middleware {
	return func(next DispatchFunc) DispatchFunc {
		return func(ctx context.Context, method, path string, payload map[string]any) (response.Envelope, error) {
			start := time.Now()
			env, err := next(ctx, method, path, payload)

			status := env.Status
			if err != nil {
				status = http.StatusInternalServerError
			}
			m.ObserveDispatch(method, path, status, time.Since(start))

			return env, err
		}
	}
}
