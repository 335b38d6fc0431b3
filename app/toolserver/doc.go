// Package toolserver is a small tool server for AI agents built on labkit:
// a registry of named tools with JSON Schema parameters, exposed over a
// discovery endpoint and two invocation styles.
//
//	routes := toolserver.NewApp(
//		toolserver.WithLogger(log),
//		toolserver.WithShutdown(cancel),
//	)
//	d := dispatch.New(routes)
//	http.ListenAndServe(":8765", dispatch.NewHTTPHandler(d))
//
// POST /invoke always answers 200 and reports failures as "Error..." strings
// in the result, which suits agents that feed results straight back to a
// model. POST /execute reports them as 404 and 500 errors instead.
//
// Tools declare their arguments as structs; the schema is generated from the
// struct and enforced before the tool runs:
//
//	type weatherArgs struct {
//		City string `json:"city" jsonschema:"City name"`
//	}
//
//	reg := toolserver.DefaultRegistry()
//	reg.Register(toolserver.MustTool("weather", "Current weather for a city",
//		func(ctx context.Context, args weatherArgs) (any, error) {
//			return lookup(ctx, args.City)
//		}))
package toolserver
