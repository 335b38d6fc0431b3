package dispatch

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/labkit/core/handler"
	"github.com/dmitrymomot/labkit/core/logger"
	"github.com/dmitrymomot/labkit/core/response"
	"github.com/dmitrymomot/labkit/core/router"
)

// DispatchFunc resolves a request to a response envelope.
type DispatchFunc func(ctx context.Context, method, path string, payload map[string]any) (response.Envelope, error)

// Dispatcher routes requests through a route table, binds payloads to
// handler parameters, runs handlers to completion and shapes their output.
type Dispatcher struct {
	table       *router.Table
	logger      *slog.Logger
	middlewares []Middleware

	dispatch DispatchFunc
}

// New creates a dispatcher over table. Panics if table is nil.
func New(table *router.Table, opts ...Option) *Dispatcher {
	if table == nil {
		panic("dispatch: nil route table")
	}

	d := &Dispatcher{
		table:  table,
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(d)
	}

	// First middleware is the outermost.
	next := DispatchFunc(d.resolve)
	for i := len(d.middlewares) - 1; i >= 0; i-- {
		next = d.middlewares[i](next)
	}
	d.dispatch = next

	return d
}

// Dispatch resolves method and path to a route and returns the response.
//
// A nil payload is treated as an empty mapping. Unknown routes produce a 404
// envelope. An *response.HTTPError returned by the handler becomes an
// envelope with its status and {"detail": ...} body. Binding errors and any
// other handler error are returned unchanged; panics are not recovered.
func (d *Dispatcher) Dispatch(ctx context.Context, method, path string, payload map[string]any) (response.Envelope, error) {
	if payload == nil {
		payload = map[string]any{}
	}
	return d.dispatch(ctx, method, path, payload)
}

// Table returns the route table the dispatcher serves.
func (d *Dispatcher) Table() *router.Table {
	return d.table
}

func (d *Dispatcher) resolve(ctx context.Context, method, path string, payload map[string]any) (response.Envelope, error) {
	route, err := d.table.Lookup(router.Method(method), path)
	if err != nil {
		d.logger.DebugContext(ctx, "route not found", logger.Route(method, path))
		return response.FromError(response.ErrNotFound), nil
	}

	args, err := route.Bind(payload)
	if err != nil {
		return response.Envelope{}, err
	}

	out, err := handler.Await(ctx, route.Handler, args)
	if err != nil {
		var httpErr *response.HTTPError
		if errors.As(err, &httpErr) {
			return response.FromError(httpErr), nil
		}
		return response.Envelope{}, err
	}

	body, status := handler.Split(out)
	return response.Envelope{Status: status, Body: response.Apply(route.Shape, body)}, nil
}
