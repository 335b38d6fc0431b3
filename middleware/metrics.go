package middleware

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/labkit/core/metrics"
)

// Metrics records request counts and latency on m. Paths are used as label
// values, so mount it only in front of a fixed route set.
func Metrics(m *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if m == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := WrapResponseWriter(w)
			next.ServeHTTP(sw, r)
			m.ObserveHTTP(r.Method, r.URL.Path, sw.Status(), time.Since(start))
		})
	}
}
