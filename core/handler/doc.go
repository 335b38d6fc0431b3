// Package handler defines route handlers and the adapters that build them.
//
// A Handler exposes its parameter-binding table (binder.Signature) and a Call
// method returning a future. Synchronous bodies are wrapped with New and
// resolve immediately; asynchronous bodies are wrapped with NewAsync. Await
// is the single blocking adapter used by the dispatcher.
//
//	sum := handler.New(
//		binder.Signature{binder.Arg("a", binder.Int), binder.Arg("b", binder.Int)},
//		func(ctx context.Context, args *binder.Args) (any, error) {
//			return args.Arg(0).(int) + args.Arg(1).(int), nil
//		},
//	)
//
//	slow := handler.NewAsync(nil, func(ctx context.Context, _ *binder.Args) *async.Future[any] {
//		return async.Async(ctx, struct{}{}, fetchReport)
//	})
//
// Typed adapters cover the common shapes:
//
//	handler.NoArgs(func(ctx context.Context) (any, error) { return tools, nil })
//	handler.WithModel("request", func(ctx context.Context, req *InvokeRequest) (any, error) { ... })
//
// To answer with a status other than 200, return a Result:
//
//	return handler.WithStatus([]string{"x", "y"}, http.StatusCreated), nil
package handler
