package binder

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/mitchellh/mapstructure"
)

// coerceScalar converts v to the Go type matching kind.
// Conversion is weakly typed: "5" becomes 5, 3.9 becomes 3, "true" becomes true.
func coerceScalar(kind reflect.Kind, v any) (any, error) {
	switch kind {
	case reflect.String:
		switch s := v.(type) {
		case string:
			return s, nil
		case bool:
			return strconv.FormatBool(s), nil
		}
		var out string
		if err := weakDecode(v, &out); err != nil {
			return fmt.Sprint(v), nil
		}
		return out, nil

	case reflect.Int:
		var out int
		if err := weakDecode(v, &out); err != nil {
			return nil, err
		}
		return out, nil

	case reflect.Float64:
		var out float64
		if err := weakDecode(v, &out); err != nil {
			return nil, err
		}
		return out, nil

	case reflect.Bool:
		var out bool
		if err := weakDecode(v, &out); err != nil {
			return nil, err
		}
		return out, nil
	}

	return v, nil
}

func weakDecode(in, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(in)
}

// sequence returns the elements of v when it is a slice or array.
func sequence(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		// []byte is a scalar blob, not a sequence of arguments
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
