package router

import "errors"

var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidMethod  = errors.New("invalid http method")
	ErrInvalidPattern = errors.New("invalid route path pattern")
	ErrNilHandler     = errors.New("nil handler")
)
