// Package router provides the route table: a mapping from (method, path) to a
// handler and an optional response shape.
//
// A Table is an explicit builder object. Build it at startup and hand it to
// the dispatcher; nothing is registered globally.
//
//	routes := router.New(router.WithLogger(log))
//
//	routes.Get("/tools", listTools, response.List(response.Model[ToolSchema]()))
//	routes.Post("/invoke", invokeTool, response.Model[InvokeResponse]())
//
// Registering the same method and path twice keeps the last handler; there is
// no duplicate-route error. Each handler's parameter table is compiled once,
// at registration, and invalid tables panic there rather than per request.
//
// Lookups for unknown routes return ErrNotFound:
//
//	route, err := routes.Lookup(router.POST, "/missing")
//	if errors.Is(err, router.ErrNotFound) {
//		// 404
//	}
package router
