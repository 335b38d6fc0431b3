package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/model"
	"github.com/dmitrymomot/labkit/core/response"
)

type tool struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (t *tool) FromMap(m map[string]any) error { return model.Decode(m, t) }
func (t *tool) ToMap() map[string]any          { return model.Flatten(t) }

type plainTool struct {
	Name string `json:"name"`
}

type counter struct {
	N int `json:"n" validate:"gte=0"`
}

func (c *counter) FromMap(m map[string]any) error { return model.Decode(m, c) }
func (c *counter) ToMap() map[string]any          { return model.Flatten(c) }

func TestApplyNilShape(t *testing.T) {
	t.Parallel()

	in := []any{1, "two"}
	assert.Equal(t, in, response.Apply(nil, in))
}

func TestModelShape(t *testing.T) {
	t.Parallel()

	shape := response.Model[tool]()

	t.Run("from mapping", func(t *testing.T) {
		t.Parallel()

		out := shape.Apply(map[string]any{"name": "calculator", "description": "math"})
		got, ok := out.(*tool)
		require.True(t, ok)
		assert.Equal(t, "calculator", got.Name)
		assert.Equal(t, "math", got.Description)
	})

	t.Run("already shaped", func(t *testing.T) {
		t.Parallel()

		in := &tool{Name: "x"}
		assert.Same(t, in, shape.Apply(in))
	})

	t.Run("from plain struct", func(t *testing.T) {
		t.Parallel()

		out := shape.Apply(plainTool{Name: "calc"})
		require.IsType(t, &tool{}, out)
		assert.Equal(t, "calc", out.(*tool).Name)
	})

	t.Run("unsupported input passes through", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 42, shape.Apply(42))
		assert.Nil(t, shape.Apply(nil))
	})

	t.Run("construction failure passes through", func(t *testing.T) {
		t.Parallel()

		in := map[string]any{"n": -1}
		assert.Equal(t, in, response.Model[counter]().Apply(in))
	})
}

func TestListShape(t *testing.T) {
	t.Parallel()

	shape := response.List(response.Model[tool]())

	out := shape.Apply([]any{
		map[string]any{"name": "calculator"},
		map[string]any{"name": "text_analyzer"},
	})
	items, ok := out.([]any)
	require.True(t, ok)
	require.Len(t, items, 2)
	assert.Equal(t, "calculator", items[0].(*tool).Name)
	assert.Equal(t, "text_analyzer", items[1].(*tool).Name)

	typed := shape.Apply([]map[string]any{{"name": "a"}})
	require.IsType(t, []any{}, typed)
	require.Len(t, typed, 1)
	assert.Equal(t, "a", typed.([]any)[0].(*tool).Name)

	assert.Equal(t, "not a list", shape.Apply("not a list"))
}

func TestSetAndTupleShape(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []any{"a", "b"}, response.Set(nil).Apply([]string{"a", "b", "a"}))
	assert.Equal(t, []any{1, 2, 1}, response.Tuple(nil).Apply([3]int{1, 2, 1}))
}

func TestMapShape(t *testing.T) {
	t.Parallel()

	shape := response.Map(nil, response.Model[tool]())
	out := shape.Apply(map[string]any{
		"calc": map[string]any{"name": "calculator"},
	})

	m, ok := out.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "calculator", m["calc"].(*tool).Name)

	ints := response.Map(nil, nil).Apply(map[int]string{1: "one"})
	assert.Equal(t, map[string]any{"1": "one"}, ints)

	assert.Equal(t, []int{1}, shape.Apply([]int{1}))
}

func TestSerialize(t *testing.T) {
	t.Parallel()

	in := map[string]any{
		"tool":  &tool{Name: "calc", Description: "math"},
		"list":  []any{&tool{Name: "a"}, 1},
		"ints":  []int{1, 2},
		"plain": "x",
		"nil":   (*tool)(nil),
	}

	out := response.Serialize(in)
	assert.Equal(t, map[string]any{
		"tool":  map[string]any{"name": "calc", "description": "math"},
		"list":  []any{map[string]any{"name": "a", "description": ""}, 1},
		"ints":  []any{1, 2},
		"plain": "x",
		"nil":   nil,
	}, out)

	assert.Equal(t, 14.0, response.Serialize(14.0))
	assert.Nil(t, response.Serialize(nil))
}
