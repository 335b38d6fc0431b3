// Package dispatch resolves requests against a route table and produces
// normalized response envelopes.
//
// A Dispatcher looks the route up, binds the payload to the handler's
// compiled parameter table, runs the handler to completion (sync and async
// handlers alike) and applies the route's response shape:
//
//	routes := router.New()
//	routes.Post("/add", handler.New(
//		binder.Signature{binder.Arg("a", binder.Int), binder.Arg("b", binder.Int)},
//		func(ctx context.Context, args *binder.Args) (any, error) {
//			return args.Arg(0).(int) + args.Arg(1).(int), nil
//		},
//	))
//
//	d := dispatch.New(routes, dispatch.WithMiddleware(dispatch.LoggingMiddleware(log)))
//	env, err := d.Dispatch(ctx, "POST", "/add", map[string]any{"a": "2", "b": 3})
//	// env.Status == 200, env.Body == 5
//
// Only *response.HTTPError is turned into an envelope. Every other error,
// binding failures included, is returned to the caller. NewHTTPHandler is the
// boundary that maps those to 422 and 500 responses.
package dispatch
