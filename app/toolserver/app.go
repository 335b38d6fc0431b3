package toolserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/labkit/core/handler"
	"github.com/dmitrymomot/labkit/core/logger"
	"github.com/dmitrymomot/labkit/core/metrics"
	"github.com/dmitrymomot/labkit/core/response"
	"github.com/dmitrymomot/labkit/core/router"
)

// Tool invocation outcomes recorded in metrics.
const (
	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeNotFound = "not_found"
)

type app struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *metrics.Collector
	shutdown func()
}

// Option configures the tool server application.
type Option func(*app)

// WithRegistry serves tools from r instead of the builtin set.
func WithRegistry(r *Registry) Option {
	return func(a *app) {
		if r != nil {
			a.registry = r
		}
	}
}

// WithLogger sets the application logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *app) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithMetrics records tool invocations on m.
func WithMetrics(m *metrics.Collector) Option {
	return func(a *app) { a.metrics = m }
}

// WithShutdown enables POST /shutdown. fn runs in its own goroutine after
// the handler returns, so the response is written before the server stops.
func WithShutdown(fn func()) Option {
	return func(a *app) { a.shutdown = fn }
}

// NewApp builds the tool server routes:
//
//	GET  /health   {"ok": true}
//	GET  /tools    tool discovery
//	POST /invoke   {"tool_name", "arguments"} -> {"result"}; failures are reported in result
//	POST /execute  {"name", "arguments"} -> {"result"}; 404 for unknown tools, 500 for tool failures
//	POST /shutdown only with WithShutdown
func NewApp(opts ...Option) *router.Table {
	a := &app{logger: logger.Discard()}
	for _, opt := range opts {
		opt(a)
	}
	if a.registry == nil {
		a.registry = DefaultRegistry()
	}

	routes := router.New(router.WithLogger(a.logger))

	routes.Get("/health", handler.NoArgs(a.health))
	routes.Get("/tools", handler.NoArgs(a.listTools), response.List(response.Model[ToolSchema]()))
	routes.Post("/invoke", handler.WithModel("request", a.invoke), response.Model[InvokeResponse]())
	routes.Post("/execute", handler.WithModel("request", a.execute))
	if a.shutdown != nil {
		routes.Post("/shutdown", handler.NoArgs(a.shutdownServer))
	}

	return routes
}

func (a *app) health(context.Context) (any, error) {
	return map[string]any{"ok": true}, nil
}

func (a *app) listTools(context.Context) (any, error) {
	tools := a.registry.List()
	out := make([]map[string]any, 0, len(tools))
	for _, t := range tools {
		out = append(out, t.Schema())
	}
	return out, nil
}

func (a *app) invoke(ctx context.Context, req *InvokeRequest) (any, error) {
	result, err := a.registry.Invoke(ctx, req.ToolName, req.Arguments)
	switch {
	case errors.Is(err, ErrToolNotFound):
		a.observe(ctx, req.ToolName, outcomeNotFound, err)
		return map[string]any{"result": fmt.Sprintf(
			"Error: tool '%s' not found. Available tools: %v", req.ToolName, a.registry.Names())}, nil
	case errors.Is(err, ErrInvalidArguments):
		a.observe(ctx, req.ToolName, outcomeError, err)
		return map[string]any{"result": fmt.Sprintf("Error: %v", err)}, nil
	case err != nil:
		a.observe(ctx, req.ToolName, outcomeError, err)
		return map[string]any{"result": fmt.Sprintf("Error executing tool '%s': %v", req.ToolName, err)}, nil
	}

	a.observe(ctx, req.ToolName, outcomeOK, nil)
	return map[string]any{"result": result}, nil
}

func (a *app) execute(ctx context.Context, req *ExecuteRequest) (any, error) {
	result, err := a.registry.Invoke(ctx, req.Name, req.Arguments)
	switch {
	case errors.Is(err, ErrToolNotFound):
		a.observe(ctx, req.Name, outcomeNotFound, err)
		return nil, response.NewHTTPError(http.StatusNotFound, fmt.Sprintf("Tool %s not found", req.Name))
	case err != nil:
		a.observe(ctx, req.Name, outcomeError, err)
		return nil, response.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	a.observe(ctx, req.Name, outcomeOK, nil)
	return map[string]any{"result": result}, nil
}

func (a *app) shutdownServer(ctx context.Context) (any, error) {
	a.logger.InfoContext(ctx, "shutdown requested", logger.Component("toolserver"))
	go a.shutdown()
	return map[string]any{"ok": true}, nil
}

func (a *app) observe(ctx context.Context, tool, outcome string, err error) {
	a.metrics.ObserveTool(tool, outcome)
	if err != nil {
		a.logger.WarnContext(ctx, "tool invocation failed",
			logger.Tool(tool),
			slog.String("outcome", outcome),
			logger.Error(err))
		return
	}
	a.logger.DebugContext(ctx, "tool invoked", logger.Tool(tool))
}
