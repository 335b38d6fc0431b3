package handler

import (
	"context"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/model"
	"github.com/dmitrymomot/labkit/pkg/async"
)

// Handler services a matched route.
// Call starts the work and returns its pending result; synchronous handlers
// return an already resolved future.
type Handler interface {
	Signature() binder.Signature
	Call(ctx context.Context, args *binder.Args) *async.Future[any]
}

// Func is a synchronous handler body.
type Func func(ctx context.Context, args *binder.Args) (any, error)

// AsyncFunc is a handler body whose result completes in the background.
type AsyncFunc func(ctx context.Context, args *binder.Args) *async.Future[any]

type funcHandler struct {
	sig binder.Signature
	fn  Func
}

// New creates a synchronous handler with the given parameter table.
func New(sig binder.Signature, fn Func) Handler {
	return &funcHandler{sig: sig, fn: fn}
}

func (h *funcHandler) Signature() binder.Signature { return h.sig }

func (h *funcHandler) Call(ctx context.Context, args *binder.Args) *async.Future[any] {
	v, err := h.fn(ctx, args)
	return async.Resolved(v, err)
}

type asyncHandler struct {
	sig binder.Signature
	fn  AsyncFunc
}

// NewAsync creates a handler whose body returns a future.
func NewAsync(sig binder.Signature, fn AsyncFunc) Handler {
	return &asyncHandler{sig: sig, fn: fn}
}

func (h *asyncHandler) Signature() binder.Signature { return h.sig }

func (h *asyncHandler) Call(ctx context.Context, args *binder.Args) *async.Future[any] {
	if f := h.fn(ctx, args); f != nil {
		return f
	}
	return async.Resolved[any](nil, nil)
}

// Await runs h to completion and returns its result. It is the only place
// that blocks on a handler, so callers never care whether h is sync or async.
func Await(ctx context.Context, h Handler, args *binder.Args) (any, error) {
	return h.Call(ctx, args).AwaitContext(ctx)
}

// NoArgs adapts a function that takes no parameters.
func NoArgs(fn func(ctx context.Context) (any, error)) Handler {
	return New(nil, func(ctx context.Context, _ *binder.Args) (any, error) {
		return fn(ctx)
	})
}

// WithModel adapts a function taking a single model parameter named name.
// The model is built from payload[name] when that is an object, otherwise
// from the whole payload.
func WithModel[T any, PT interface {
	*T
	model.Model
}](name string, fn func(ctx context.Context, req PT) (any, error)) Handler {
	sig := binder.Signature{binder.Arg(name, binder.ModelOf[T, PT]())}
	return New(sig, func(ctx context.Context, args *binder.Args) (any, error) {
		req, err := binder.Get[PT](args, name)
		if err != nil {
			return nil, err
		}
		return fn(ctx, req)
	})
}
