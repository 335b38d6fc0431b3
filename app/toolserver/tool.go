package toolserver

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrymomot/labkit/core/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Func runs a tool with arguments that already passed schema validation.
type Func func(ctx context.Context, args map[string]any) (any, error)

// Tool is a named, described function with a JSON Schema for its arguments.
type Tool struct {
	Name        string
	Description string
	Parameters  *jsonschema.Schema
	Fn          Func

	resolved *jsonschema.Resolved
}

// NewTool builds a tool whose parameter schema is generated from A.
// Field descriptions come from `jsonschema` struct tags; fields without
// omitempty are required and unknown arguments are rejected.
func NewTool[A any](name, description string, fn func(ctx context.Context, args A) (any, error)) (Tool, error) {
	schema, err := jsonschema.For[A](&jsonschema.ForOptions{})
	if err != nil {
		return Tool{}, fmt.Errorf("%w: %s: %v", ErrInvalidTool, name, err)
	}

	return newTool(name, description, schema, func(ctx context.Context, raw map[string]any) (any, error) {
		var args A
		if err := model.Decode(raw, &args); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidArguments, err)
		}
		return fn(ctx, args)
	})
}

// MustTool is like NewTool but panics on error.
func MustTool[A any](name, description string, fn func(ctx context.Context, args A) (any, error)) Tool {
	t, err := NewTool(name, description, fn)
	if err != nil {
		panic(err)
	}
	return t
}

// NewRawTool builds a tool from a hand-written schema. A nil schema accepts
// any object.
func NewRawTool(name, description string, schema *jsonschema.Schema, fn Func) (Tool, error) {
	if schema == nil {
		schema = &jsonschema.Schema{Type: "object"}
	}
	return newTool(name, description, schema, fn)
}

func newTool(name, description string, schema *jsonschema.Schema, fn Func) (Tool, error) {
	if name == "" {
		return Tool{}, fmt.Errorf("%w: empty name", ErrInvalidTool)
	}
	if fn == nil {
		return Tool{}, fmt.Errorf("%w: %s: nil function", ErrInvalidTool, name)
	}

	resolved, err := schema.Resolve(nil)
	if err != nil {
		return Tool{}, fmt.Errorf("%w: %s: %v", ErrInvalidTool, name, err)
	}

	return Tool{
		Name:        name,
		Description: description,
		Parameters:  schema,
		Fn:          fn,
		resolved:    resolved,
	}, nil
}

// Validate checks args against the parameter schema.
func (t Tool) Validate(args map[string]any) error {
	if t.resolved == nil {
		return nil
	}
	if args == nil {
		args = map[string]any{}
	}
	if err := t.resolved.Validate(normalize(args)); err != nil {
		return fmt.Errorf("%w for tool '%s': %v", ErrInvalidArguments, t.Name, err)
	}
	return nil
}

// Call validates args and runs the tool.
func (t Tool) Call(ctx context.Context, args map[string]any) (any, error) {
	if err := t.Validate(args); err != nil {
		return nil, err
	}
	if args == nil {
		args = map[string]any{}
	}
	return t.Fn(ctx, args)
}

// Schema returns the discovery form of the tool: the schema's properties
// keyed by argument name.
func (t Tool) Schema() map[string]any {
	params := map[string]any{}
	if t.Parameters != nil {
		for name, prop := range t.Parameters.Properties {
			params[name] = schemaMap(prop)
		}
	}
	return map[string]any{
		"name":        t.Name,
		"description": t.Description,
		"parameters":  params,
	}
}

func schemaMap(s *jsonschema.Schema) map[string]any {
	raw, err := json.Marshal(s)
	if err != nil {
		return map[string]any{}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{}
	}
	return out
}

// normalize round-trips v through JSON so Go-typed values (ints, typed
// slices, structs) validate the same way decoded request bodies do.
func normalize(v map[string]any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}

// Registry holds tools by name and remembers registration order.
// Safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
	order []string
}

// NewRegistry creates a registry holding tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds t. Registering a name again replaces the tool and keeps its
// original position.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tools[t.Name]; !ok {
		r.order = append(r.order, t.Name)
	}
	r.tools[t.Name] = t
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns tools in registration order.
func (r *Registry) List() []Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Invoke runs the named tool with args. Unknown names return ErrToolNotFound;
// arguments failing the schema return ErrInvalidArguments.
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (any, error) {
	t, ok := r.Get(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return t.Call(ctx, maps.Clone(args))
}
