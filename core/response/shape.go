package response

import (
	"fmt"
	"reflect"

	"github.com/dmitrymomot/labkit/core/model"
)

// Shape coerces a handler's raw payload into a declared form.
// Implementations never panic: input they do not understand is returned unchanged.
type Shape interface {
	Apply(v any) any
}

// Apply runs s over v. A nil shape passes v through.
func Apply(s Shape, v any) any {
	if s == nil {
		return v
	}
	return s.Apply(v)
}

// Model declares a response shape of model *T.
func Model[T any, PT interface {
	*T
	model.Model
}]() Shape {
	f := model.FactoryOf[T, PT]()
	return modelShape{factory: f, typ: model.TypeOf(f)}
}

type modelShape struct {
	factory model.Factory
	typ     reflect.Type
}

func (s modelShape) Apply(v any) any {
	if v == nil {
		return nil
	}
	if reflect.TypeOf(v) == s.typ {
		return v
	}

	var src map[string]any
	switch x := v.(type) {
	case map[string]any:
		src = x
	case model.Model:
		src = x.ToMap()
	default:
		src = model.Flatten(v)
	}
	if src == nil {
		return v
	}

	m := s.factory()
	if err := m.FromMap(src); err != nil {
		return v
	}
	return m
}

type seqKind uint8

const (
	seqList seqKind = iota
	seqSet
	seqTuple
)

// List declares a sequence whose elements are shaped by inner.
// List, Tuple and Set always return []any, whatever slice or array type they
// were given, since shaped elements may change type.
func List(inner Shape) Shape { return seqShape{inner: inner, kind: seqList} }

// Tuple declares a fixed sequence whose elements are shaped by inner.
func Tuple(inner Shape) Shape { return seqShape{inner: inner, kind: seqTuple} }

// Set declares a sequence shaped by inner with duplicate elements removed.
// Only comparable shaped values are deduplicated; order of first occurrence is kept.
func Set(inner Shape) Shape { return seqShape{inner: inner, kind: seqSet} }

type seqShape struct {
	inner Shape
	kind  seqKind
}

func (s seqShape) Apply(v any) any {
	items, ok := sequenceOf(v)
	if !ok {
		return v
	}

	out := make([]any, 0, len(items))
	var seen map[any]struct{}
	if s.kind == seqSet {
		seen = make(map[any]struct{}, len(items))
	}

	for _, item := range items {
		shaped := Apply(s.inner, item)
		if seen != nil && shaped != nil && reflect.ValueOf(shaped).Comparable() {
			if _, dup := seen[shaped]; dup {
				continue
			}
			seen[shaped] = struct{}{}
		}
		out = append(out, shaped)
	}
	return out
}

// Map declares a mapping whose keys and values are shaped by key and value.
func Map(key, value Shape) Shape { return mapShape{key: key, value: value} }

type mapShape struct {
	key   Shape
	value Shape
}

func (s mapShape) Apply(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map {
		return v
	}

	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		k := Apply(s.key, iter.Key().Interface())
		out[mapKey(k)] = Apply(s.value, iter.Value().Interface())
	}
	return out
}

func mapKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	return fmt.Sprint(k)
}

// sequenceOf returns the elements of a slice or array; strings and byte
// slices are not sequences.
func sequenceOf(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return nil, false
		}
		items := make([]any, rv.Len())
		for i := range rv.Len() {
			items[i] = rv.Index(i).Interface()
		}
		return items, true
	}
	return nil, false
}
