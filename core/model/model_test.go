package model_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/model"
)

type pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (p *pair) FromMap(m map[string]any) error { return model.Decode(m, p) }
func (p *pair) ToMap() map[string]any          { return model.Flatten(p) }

type account struct {
	Email string `json:"email" validate:"required,email"`
	Age   int    `json:"age" validate:"gte=0"`
}

func (a *account) FromMap(m map[string]any) error { return model.Decode(m, a) }
func (a *account) ToMap() map[string]any          { return model.Flatten(a) }

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := map[string]any{"a": 1, "b": 2}

	p, err := model.New[pair](in)
	require.NoError(t, err)
	assert.Equal(t, 1, p.A)
	assert.Equal(t, 2, p.B)
	assert.Equal(t, in, p.ToMap())
}

func TestDecodeWeaklyTyped(t *testing.T) {
	t.Parallel()

	p, err := model.New[pair](map[string]any{"a": "7", "b": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 7, p.A)
	assert.Equal(t, 3, p.B)
}

func TestDecodeErrors(t *testing.T) {
	t.Parallel()

	t.Run("type mismatch", func(t *testing.T) {
		t.Parallel()

		_, err := model.New[pair](map[string]any{"a": "not a number"})
		assert.ErrorIs(t, err, model.ErrDecode)
	})

	t.Run("validation", func(t *testing.T) {
		t.Parallel()

		_, err := model.New[account](map[string]any{"email": "nope", "age": 3})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("valid", func(t *testing.T) {
		t.Parallel()

		a, err := model.New[account](map[string]any{"email": "a@example.com", "age": 3})
		require.NoError(t, err)
		assert.Equal(t, "a@example.com", a.Email)
	})
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	assert.Equal(t, map[string]any{"a": 1, "b": 0}, model.Flatten(pair{A: 1}))
	assert.Equal(t, map[string]any{"k": "v"}, model.Flatten(map[string]any{"k": "v"}))
	assert.Nil(t, model.Flatten(42))
	assert.Nil(t, model.Flatten((*pair)(nil)))
}

func TestFactoryOf(t *testing.T) {
	t.Parallel()

	f := model.FactoryOf[pair]()
	m := f()
	require.IsType(t, &pair{}, m)
	assert.Equal(t, reflect.TypeOf(&pair{}), model.TypeOf(f))
	assert.Nil(t, model.TypeOf(nil))
}
