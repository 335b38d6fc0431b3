package binder

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/labkit/core/model"
)

// Kind describes how a parameter receives its value.
type Kind uint8

const (
	// Positional parameters are appended to Args.Positional.
	Positional Kind = iota
	// Keyword parameters are stored in Args.Keyword.
	Keyword
	// VarPositional absorbs a sequence into Args.Positional.
	VarPositional
	// VarKeyword merges a mapping into Args.Keyword.
	VarKeyword
)

func (k Kind) String() string {
	switch k {
	case Positional:
		return "positional"
	case Keyword:
		return "keyword"
	case VarPositional:
		return "var-positional"
	case VarKeyword:
		return "var-keyword"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Type is the declared type of a parameter. It decides how a payload value
// is coerced before it reaches the handler.
type Type struct {
	name    string
	scalar  reflect.Kind
	factory model.Factory
	convert func(any) (any, error)
}

// Built-in parameter types.
var (
	Any    = Type{name: "any"}
	String = Type{name: "string", scalar: reflect.String}
	Int    = Type{name: "int", scalar: reflect.Int}
	Float  = Type{name: "float", scalar: reflect.Float64}
	Bool   = Type{name: "bool", scalar: reflect.Bool}
)

// ModelOf declares a model-typed parameter built with *T's FromMap.
func ModelOf[T any, PT interface {
	*T
	model.Model
}]() Type {
	f := model.FactoryOf[T, PT]()
	return Type{name: model.TypeOf(f).String(), factory: f}
}

// Convert declares a parameter type with a best-effort constructor.
// When fn fails the raw payload value is passed through instead.
func Convert(name string, fn func(any) (any, error)) Type {
	return Type{name: name, convert: fn}
}

// IsModel reports whether the type is constructed from a mapping.
func (t Type) IsModel() bool { return t.factory != nil }

// IsScalar reports whether the type is one of String, Int, Float or Bool.
func (t Type) IsScalar() bool { return t.scalar != reflect.Invalid }

func (t Type) String() string {
	if t.name == "" {
		return "any"
	}
	return t.name
}

// Param is one entry of a handler's parameter-binding table.
type Param struct {
	Name       string
	Kind       Kind
	Type       Type
	Default    any
	HasDefault bool
}

// Arg declares a positional parameter.
func Arg(name string, t Type) Param {
	return Param{Name: name, Kind: Positional, Type: t}
}

// KwArg declares a keyword-only parameter.
func KwArg(name string, t Type) Param {
	return Param{Name: name, Kind: Keyword, Type: t}
}

// VarArgs declares a variadic positional parameter.
func VarArgs(name string) Param {
	return Param{Name: name, Kind: VarPositional, Type: Any}
}

// VarKwArgs declares a variadic keyword parameter. Its mapping is merged into
// the keyword arguments; a key naming a declared parameter fails with
// ErrBinding instead of overwriting it.
func VarKwArgs(name string) Param {
	return Param{Name: name, Kind: VarKeyword, Type: Any}
}

// WithDefault returns a copy of the parameter with a default value.
func (p Param) WithDefault(v any) Param {
	p.Default = v
	p.HasDefault = true
	return p
}

// Signature is the ordered parameter-binding table of a handler.
type Signature []Param
