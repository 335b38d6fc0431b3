package binder

import "errors"

// Error variables define common binding failures.
var (
	// ErrInvalidSignature indicates a parameter table that cannot be bound,
	// such as duplicate names or misplaced variadic parameters.
	ErrInvalidSignature = errors.New("invalid handler signature")

	// ErrBinding indicates a payload value could not be bound to a parameter.
	ErrBinding = errors.New("failed to bind argument")

	// ErrMissingArgument indicates a lookup for an argument that was not bound.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArgumentType indicates a bound argument has an unexpected Go type.
	ErrArgumentType = errors.New("unexpected argument type")

	// ErrUnsupportedMediaType indicates the Content-Type header specifies a media type
	// other than application/json.
	ErrUnsupportedMediaType = errors.New("unsupported media type")

	// ErrFailedToParseJSON indicates the request body contains invalid JSON
	// or is not a JSON object.
	ErrFailedToParseJSON = errors.New("failed to parse JSON request body")
)
