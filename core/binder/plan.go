package binder

import (
	"fmt"
	"maps"
	"slices"
)

// Plan is a compiled Signature, validated once and reused for every call.
type Plan struct {
	params []Param
	names  []string // names of non-variadic positional params, in order
}

// Compile validates sig and returns a reusable binding plan.
func Compile(sig Signature) (*Plan, error) {
	seen := make(map[string]bool, len(sig))
	var (
		names       []string
		varPos      bool
		varKw       bool
		afterVarPos bool
	)

	for i, p := range sig {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: parameter %d has no name", ErrInvalidSignature, i)
		}
		if seen[p.Name] {
			return nil, fmt.Errorf("%w: duplicate parameter %q", ErrInvalidSignature, p.Name)
		}
		seen[p.Name] = true

		if varKw {
			return nil, fmt.Errorf("%w: parameter %q follows the var-keyword parameter", ErrInvalidSignature, p.Name)
		}

		switch p.Kind {
		case Positional:
			if afterVarPos {
				return nil, fmt.Errorf("%w: positional parameter %q follows the var-positional parameter", ErrInvalidSignature, p.Name)
			}
			names = append(names, p.Name)
		case Keyword:
		case VarPositional:
			if varPos {
				return nil, fmt.Errorf("%w: more than one var-positional parameter", ErrInvalidSignature)
			}
			varPos = true
			afterVarPos = true
		case VarKeyword:
			varKw = true
		default:
			return nil, fmt.Errorf("%w: parameter %q has unknown kind %s", ErrInvalidSignature, p.Name, p.Kind)
		}
	}

	return &Plan{params: append(Signature(nil), sig...), names: names}, nil
}

// MustCompile is like Compile but panics on an invalid signature.
func MustCompile(sig Signature) *Plan {
	p, err := Compile(sig)
	if err != nil {
		panic(err)
	}
	return p
}

// Params returns a copy of the compiled parameter table.
func (p *Plan) Params() Signature {
	return append(Signature(nil), p.params...)
}

// Bind resolves every declared parameter against payload, in declaration order.
//
// For a regular parameter the first matching rule wins:
//  1. model-typed: built from payload[name] when that is a mapping, else from the whole payload
//  2. payload has the name: scalar coercion, best-effort conversion, or the raw value
//  3. declared default
//  4. the whole payload
func (p *Plan) Bind(payload map[string]any) (*Args, error) {
	if payload == nil {
		payload = map[string]any{}
	}

	args := &Args{
		Positional: make([]any, 0, len(p.names)),
		Keyword:    make(map[string]any),
		names:      p.names,
	}

	for _, param := range p.params {
		switch param.Kind {
		case VarPositional:
			v, ok := payload[param.Name]
			if !ok {
				continue
			}
			if items, ok := sequence(v); ok {
				args.Positional = append(args.Positional, items...)
			} else {
				args.Positional = append(args.Positional, v)
			}

		case VarKeyword:
			v, ok := payload[param.Name]
			if !ok {
				continue
			}
			extra, ok := v.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("%w: parameter %q expects a mapping, got %T", ErrBinding, param.Name, v)
			}
			for key := range extra {
				if _, dup := args.Keyword[key]; dup || slices.Contains(p.names, key) {
					return nil, fmt.Errorf("%w: multiple values for argument %q", ErrBinding, key)
				}
			}
			maps.Copy(args.Keyword, extra)

		default:
			v, err := resolve(param, payload)
			if err != nil {
				return nil, err
			}
			if param.Kind == Positional {
				args.Positional = append(args.Positional, v)
			} else {
				args.Keyword[param.Name] = v
			}
		}
	}

	return args, nil
}

func resolve(param Param, payload map[string]any) (any, error) {
	t := param.Type

	if t.IsModel() {
		src := payload
		if nested, ok := payload[param.Name].(map[string]any); ok {
			src = nested
		}
		m := t.factory()
		if err := m.FromMap(src); err != nil {
			return nil, fmt.Errorf("%w: parameter %q: %w", ErrBinding, param.Name, err)
		}
		return m, nil
	}

	if v, ok := payload[param.Name]; ok {
		if v == nil {
			return nil, nil
		}
		if t.IsScalar() {
			out, err := coerceScalar(t.scalar, v)
			if err != nil {
				return nil, fmt.Errorf("%w: parameter %q: cannot convert %T to %s: %v", ErrBinding, param.Name, v, t, err)
			}
			return out, nil
		}
		if t.convert != nil {
			if out, err := t.convert(v); err == nil {
				return out, nil
			}
		}
		return v, nil
	}

	if param.HasDefault {
		return param.Default, nil
	}

	// Legacy single-argument handlers receive the whole payload
	return payload, nil
}
