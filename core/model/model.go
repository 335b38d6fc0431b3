package model

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/fatih/structs"
	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
)

// Model is a value that can be constructed from a plain key-value mapping
// and flattened back to one.
type Model interface {
	FromMap(m map[string]any) error
	ToMap() map[string]any
}

// Factory returns a fresh, empty model instance.
type Factory func() Model

// FactoryOf returns a Factory producing zero values of *T.
func FactoryOf[T any, PT interface {
	*T
	Model
}]() Factory {
	return func() Model { return PT(new(T)) }
}

// New builds a *T from m.
func New[T any, PT interface {
	*T
	Model
}](m map[string]any) (PT, error) {
	p := PT(new(T))
	if err := p.FromMap(m); err != nil {
		return nil, err
	}
	return p, nil
}

// TypeOf returns the dynamic type a Factory produces.
func TypeOf(f Factory) reflect.Type {
	if f == nil {
		return nil
	}
	return reflect.TypeOf(f())
}

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Decode fills dst (a pointer to a struct) from src using json tags.
// Scalars are weakly typed, so "5" decodes into an int field.
// Struct fields carrying `validate` tags are checked after decoding.
func Decode(src map[string]any, dst any) error {
	cfg := &mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: true,
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := decoder.Decode(src); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	if !isStructPointer(dst) {
		return nil
	}
	if err := structValidator().Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return nil
}

// Flatten converts a struct (or pointer to struct) into a map keyed by json
// tag names. Maps pass through; anything else yields nil.
func Flatten(src any) map[string]any {
	if m, ok := src.(map[string]any); ok {
		return m
	}

	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	s := structs.New(rv.Interface())
	s.TagName = "json"
	return s.Map()
}

func isStructPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && !rv.IsNil() && rv.Elem().Kind() == reflect.Struct
}
