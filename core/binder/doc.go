// Package binder binds decoded JSON payloads to handler parameters.
//
// A handler declares its parameters once, as data, in a Signature. The
// signature is compiled into a Plan at route registration time and the plan
// is reused for every request:
//
//	sig := binder.Signature{
//		binder.Arg("request", binder.ModelOf[InvokeRequest]()),
//		binder.KwArg("limit", binder.Int).WithDefault(10),
//		binder.VarArgs("items"),
//		binder.VarKwArgs("options"),
//	}
//
//	plan := binder.MustCompile(sig)
//	args, err := plan.Bind(payload)
//
// # Resolution Order
//
// Each regular parameter is resolved with the first rule that applies:
//
//  1. Model-typed parameters are built from payload[name] when that value is a
//     mapping, otherwise from the whole payload.
//  2. When the payload has a key equal to the parameter name, the value is
//     coerced to the declared scalar type (String, Int, Float, Bool). Types
//     declared with Convert get a best-effort conversion that falls back to
//     the raw value; Any passes the raw value through.
//  3. The declared default, if any.
//  4. The whole payload, which keeps single-argument handlers working.
//
// Var-positional parameters extend the positional list with a sequence value;
// var-keyword parameters merge a mapping value into the keyword arguments.
//
// # Reading Arguments
//
//	req, err := binder.Get[*InvokeRequest](args, "request")
//	limit, err := binder.Get[int](args, "limit")
//	extra := args.Rest()
//
// # HTTP Bodies
//
// JSON reads a request body as a payload with content-type validation, a size
// limit and rejection of trailing data. An empty body is an empty payload.
//
//	payload, err := binder.JSON(r)
//	if errors.Is(err, binder.ErrUnsupportedMediaType) {
//		// 415
//	}
package binder
