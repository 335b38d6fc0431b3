package binder

import (
	"fmt"
	"slices"
)

// Args holds the arguments produced by binding a payload.
type Args struct {
	Positional []any
	Keyword    map[string]any

	names []string
}

// NewArgs builds Args directly, bypassing payload binding.
// names label the leading positional values for Value lookups.
func NewArgs(positional []any, keyword map[string]any, names ...string) *Args {
	if keyword == nil {
		keyword = map[string]any{}
	}
	return &Args{Positional: positional, Keyword: keyword, names: names}
}

// Len returns the number of positional arguments.
func (a *Args) Len() int { return len(a.Positional) }

// Arg returns the i-th positional argument or nil when out of range.
func (a *Args) Arg(i int) any {
	if i < 0 || i >= len(a.Positional) {
		return nil
	}
	return a.Positional[i]
}

// Kwarg returns a keyword argument.
func (a *Args) Kwarg(name string) (any, bool) {
	v, ok := a.Keyword[name]
	return v, ok
}

// Value looks a parameter up by name among keyword and named positional arguments.
func (a *Args) Value(name string) (any, bool) {
	if v, ok := a.Keyword[name]; ok {
		return v, true
	}
	if i := slices.Index(a.names, name); i >= 0 && i < len(a.Positional) {
		return a.Positional[i], true
	}
	return nil, false
}

// Rest returns the positional arguments collected by a var-positional parameter.
func (a *Args) Rest() []any {
	if len(a.names) >= len(a.Positional) {
		return nil
	}
	return a.Positional[len(a.names):]
}

// Get returns the named argument asserted to T.
func Get[T any](a *Args, name string) (T, error) {
	var zero T
	v, ok := a.Value(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrMissingArgument, name)
	}
	out, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrArgumentType, name, v, zero)
	}
	return out, nil
}
