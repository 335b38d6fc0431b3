package dispatch

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/logger"
	"github.com/dmitrymomot/labkit/core/metrics"
	"github.com/dmitrymomot/labkit/core/response"
	"github.com/dmitrymomot/labkit/core/router"
	"github.com/dmitrymomot/labkit/middleware"
)

// DefaultBodyLimit caps JSON request bodies read by the HTTP adapter.
const DefaultBodyLimit = 4 << 20

type httpHandler struct {
	d         *Dispatcher
	logger    *slog.Logger
	metrics   *metrics.Collector
	bodyLimit int64
	extra     []func(http.Handler) http.Handler
}

// HTTPOption configures the HTTP adapter.
type HTTPOption func(*httpHandler)

// WithHTTPLogger sets the logger for access and error logs.
func WithHTTPLogger(l *slog.Logger) HTTPOption {
	return func(h *httpHandler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithHTTPMetrics records HTTP request metrics on m.
func WithHTTPMetrics(m *metrics.Collector) HTTPOption {
	return func(h *httpHandler) { h.metrics = m }
}

// WithBodyLimit caps request bodies at n bytes.
func WithBodyLimit(n int64) HTTPOption {
	return func(h *httpHandler) {
		if n > 0 {
			h.bodyLimit = n
		}
	}
}

// WithHTTPMiddleware wraps the adapter in additional net/http middleware,
// inside the request ID and logging layers.
func WithHTTPMiddleware(mw ...func(http.Handler) http.Handler) HTTPOption {
	return func(h *httpHandler) { h.extra = append(h.extra, mw...) }
}

// NewHTTPHandler exposes d over HTTP.
//
// GET requests carry an empty payload and the query string is ignored; POST
// requests bind the JSON object body. Other methods get 405. Every response carries an X-Request-ID header.
// Binding errors map to 422; any other error the dispatcher propagates maps
// to 500 and is logged, since this is the outermost boundary.
func NewHTTPHandler(d *Dispatcher, opts ...HTTPOption) http.Handler {
	h := &httpHandler{
		d:         d,
		logger:    logger.Discard(),
		bodyLimit: DefaultBodyLimit,
	}
	for _, opt := range opts {
		opt(h)
	}

	mw := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.Logging(h.logger),
		middleware.Metrics(h.metrics),
		middleware.BodyLimit(h.bodyLimit),
	}
	mw = append(mw, h.extra...)

	return middleware.Chain(http.HandlerFunc(h.serve), mw...)
}

func (h *httpHandler) serve(w http.ResponseWriter, r *http.Request) {
	if err := h.respond(r)(w, r); err != nil {
		h.logger.ErrorContext(r.Context(), "failed to write response",
			logger.Route(r.Method, r.URL.Path),
			logger.Error(err))
	}
}

func (h *httpHandler) respond(r *http.Request) response.Responder {
	method, err := router.ParseMethod(r.Method)
	if err != nil {
		return response.JSONError(response.ErrMethodNotAllowed)
	}

	payload, err := h.payload(method, r)
	if err != nil {
		switch {
		case errors.Is(err, binder.ErrUnsupportedMediaType):
			return response.JSONError(response.ErrUnsupportedMediaType)
		default:
			return response.JSONError(response.ErrBadRequest.WithDetail(err.Error()))
		}
	}

	env, err := h.d.Dispatch(r.Context(), string(method), r.URL.Path, payload)
	if err != nil {
		if errors.Is(err, binder.ErrBinding) {
			return response.JSONError(response.ErrUnprocessableEntity.WithDetail(err.Error()))
		}
		h.logger.ErrorContext(r.Context(), "unhandled dispatch error",
			logger.Route(r.Method, r.URL.Path),
			logger.Error(err))
		return response.JSONError(err)
	}

	return response.JSONWithStatus(response.Serialize(env.Body), env.Status)
}

// payload reads the request body. GET requests carry no payload; the query
// string is not part of the request surface.
func (h *httpHandler) payload(method router.Method, r *http.Request) (map[string]any, error) {
	if method == router.GET {
		return map[string]any{}, nil
	}
	return binder.JSONWithLimit(r, h.bodyLimit)
}
