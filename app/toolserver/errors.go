package toolserver

import "errors"

var (
	// ErrToolNotFound indicates no tool is registered under the requested name.
	ErrToolNotFound = errors.New("tool not found")

	// ErrInvalidArguments indicates arguments that do not match the tool's
	// parameter schema.
	ErrInvalidArguments = errors.New("invalid arguments")

	// ErrInvalidTool indicates a tool definition that cannot be registered.
	ErrInvalidTool = errors.New("invalid tool")

	// ErrUnknownOperation indicates an arithmetic operation the tool does not support.
	ErrUnknownOperation = errors.New("unknown operation")

	// ErrDivisionByZero indicates a division with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
)
