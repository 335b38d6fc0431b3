// Package middleware provides net/http middleware for the dispatcher's HTTP
// adapter: request IDs, access logging, metrics, body limits and CORS.
//
// Every middleware has the form func(http.Handler) http.Handler. Use Chain to
// apply several; the first one listed is the outermost:
//
//	h := middleware.Chain(mux,
//		middleware.RequestID(),
//		middleware.Logging(log),
//		middleware.Metrics(collector),
//		middleware.BodyLimit(1*middleware.MB),
//	)
//
// # Request ID
//
// RequestID reuses an incoming X-Request-ID header or generates a UUID, sets
// it on the response and stores it in the request context:
//
//	id, ok := middleware.GetRequestID(r.Context())
//
// # Logging
//
// Logging writes one line per request with method, path, status, size and
// latency. 5xx responses log at error level; 4xx and slow requests at warn.
// LoggingWithConfig adds a skip func, a fixed level and a slow threshold.
//
// # CORS
//
// CORS allows every origin. CORSWithConfig restricts origins, methods and
// headers and answers preflight requests itself:
//
//	middleware.CORSWithConfig(middleware.CORSConfig{
//		AllowOrigins:    []string{"https://app.example.com"},
//		AllowOriginFunc: middleware.AllowOriginSubdomain("example.com"),
//	})
package middleware
