package response

import (
	"reflect"

	"github.com/dmitrymomot/labkit/core/model"
)

// Serialize turns a response payload into plain JSON-ready data: models are
// flattened to maps, maps and sequences are walked recursively, everything
// else passes through.
func Serialize(v any) any {
	if v == nil {
		return nil
	}

	if m, ok := v.(model.Model); ok {
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil
		}
		return Serialize(m.ToMap())
	}

	switch x := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, val := range x {
			out[k] = Serialize(val)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, val := range x {
			out[i] = Serialize(val)
		}
		return out
	case string, []byte:
		return v
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[mapKey(iter.Key().Interface())] = Serialize(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		items, _ := sequenceOf(v)
		if items == nil {
			return v
		}
		out := make([]any, len(items))
		for i, val := range items {
			out[i] = Serialize(val)
		}
		return out
	}

	return v
}
