package binder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/model"
)

type pair struct {
	A int `json:"a"`
	B int `json:"b"`
}

func (p *pair) FromMap(m map[string]any) error { return model.Decode(m, p) }
func (p *pair) ToMap() map[string]any          { return model.Flatten(p) }

type strict struct {
	Name string `json:"name" validate:"required"`
}

func (s *strict) FromMap(m map[string]any) error { return model.Decode(m, s) }
func (s *strict) ToMap() map[string]any          { return model.Flatten(s) }

func TestCompile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		sig  binder.Signature
		ok   bool
	}{
		{"empty", binder.Signature{}, true},
		{"all kinds", binder.Signature{
			binder.Arg("a", binder.Int),
			binder.VarArgs("rest"),
			binder.KwArg("k", binder.String),
			binder.VarKwArgs("extra"),
		}, true},
		{"unnamed", binder.Signature{binder.Arg("", binder.Any)}, false},
		{"duplicate", binder.Signature{binder.Arg("a", binder.Any), binder.KwArg("a", binder.Any)}, false},
		{"two var-positional", binder.Signature{binder.VarArgs("a"), binder.VarArgs("b")}, false},
		{"positional after var-positional", binder.Signature{binder.VarArgs("a"), binder.Arg("b", binder.Any)}, false},
		{"param after var-keyword", binder.Signature{binder.VarKwArgs("a"), binder.KwArg("b", binder.Any)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := binder.Compile(tt.sig)
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, binder.ErrInvalidSignature)
			}
		})
	}

	assert.Panics(t, func() {
		binder.MustCompile(binder.Signature{binder.VarArgs("a"), binder.VarArgs("b")})
	})
}

func TestBindModel(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{binder.Arg("request", binder.ModelOf[pair]())})

	t.Run("from whole payload", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{"a": 1, "b": 2})
		require.NoError(t, err)

		p, err := binder.Get[*pair](args, "request")
		require.NoError(t, err)
		assert.Equal(t, 1, p.A)
		assert.Equal(t, 2, p.B)
		assert.Equal(t, map[string]any{"a": 1, "b": 2}, p.ToMap())
	})

	t.Run("prefers nested value at parameter name", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{
			"request": map[string]any{"a": 5, "b": 6},
			"a":       1,
		})
		require.NoError(t, err)

		p := args.Arg(0).(*pair)
		assert.Equal(t, 5, p.A)
		assert.Equal(t, 6, p.B)
	})

	t.Run("non-mapping value falls back to whole payload", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{"request": "x", "a": 3})
		require.NoError(t, err)
		assert.Equal(t, 3, args.Arg(0).(*pair).A)
	})

	t.Run("construction failure", func(t *testing.T) {
		t.Parallel()

		strictPlan := binder.MustCompile(binder.Signature{binder.Arg("body", binder.ModelOf[strict]())})
		_, err := strictPlan.Bind(map[string]any{})
		assert.ErrorIs(t, err, binder.ErrBinding)
		assert.ErrorIs(t, err, model.ErrValidation)
	})
}

func TestBindScalars(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{
		binder.Arg("s", binder.String),
		binder.Arg("i", binder.Int),
		binder.Arg("f", binder.Float),
		binder.Arg("b", binder.Bool),
	})

	args, err := plan.Bind(map[string]any{"s": 12, "i": "42", "f": 3, "b": "true"})
	require.NoError(t, err)
	assert.Equal(t, []any{"12", 42, 3.0, true}, args.Positional)

	args, err = plan.Bind(map[string]any{"s": true, "i": 7.9, "f": "2.5", "b": 0})
	require.NoError(t, err)
	assert.Equal(t, []any{"true", 7, 2.5, false}, args.Positional)

	_, err = plan.Bind(map[string]any{"s": "x", "i": "not a number", "f": 1, "b": true})
	assert.ErrorIs(t, err, binder.ErrBinding)
}

func TestBindFallbackChain(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{
		binder.Arg("name", binder.String),
		binder.KwArg("limit", binder.Int).WithDefault(10),
		binder.KwArg("raw", binder.Any),
	})

	payload := map[string]any{"name": "calc"}
	args, err := plan.Bind(payload)
	require.NoError(t, err)

	assert.Equal(t, "calc", args.Arg(0))
	limit, err := binder.Get[int](args, "limit")
	require.NoError(t, err)
	assert.Equal(t, 10, limit)

	// No key and no default: the whole payload is passed
	raw, ok := args.Kwarg("raw")
	require.True(t, ok)
	assert.Equal(t, payload, raw)

	// Key wins over default
	args, err = plan.Bind(map[string]any{"name": "calc", "limit": 3})
	require.NoError(t, err)
	assert.Equal(t, 3, args.Keyword["limit"])

	// Missing positional with no default also gets the whole payload
	args, err = plan.Bind(map[string]any{"limit": 1})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"limit": 1}, args.Arg(0))
}

func TestBindNilPayload(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{binder.Arg("body", binder.Any)})
	args, err := plan.Bind(nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, args.Arg(0))
}

func TestBindNullValue(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{binder.Arg("n", binder.Int)})
	args, err := plan.Bind(map[string]any{"n": nil})
	require.NoError(t, err)
	assert.Nil(t, args.Arg(0))
}

func TestBindConvert(t *testing.T) {
	t.Parallel()

	upper := binder.Convert("upper", func(v any) (any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, assert.AnError
		}
		return s + "!", nil
	})
	plan := binder.MustCompile(binder.Signature{binder.Arg("v", upper)})

	args, err := plan.Bind(map[string]any{"v": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "hi!", args.Arg(0))

	args, err = plan.Bind(map[string]any{"v": 5})
	require.NoError(t, err)
	assert.Equal(t, 5, args.Arg(0), "failed conversion keeps the raw value")
}

func TestBindVariadic(t *testing.T) {
	t.Parallel()

	plan := binder.MustCompile(binder.Signature{
		binder.Arg("first", binder.Any),
		binder.VarArgs("rest"),
		binder.KwArg("mode", binder.String),
		binder.VarKwArgs("extra"),
	})

	t.Run("absorbs sequence and mapping", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{
			"first": 1,
			"rest":  []any{2, 3},
			"mode":  "fast",
			"extra": map[string]any{"x": 1, "y": 2},
		})
		require.NoError(t, err)

		assert.Equal(t, []any{1, 2, 3}, args.Positional)
		assert.Equal(t, []any{2, 3}, args.Rest())
		assert.Equal(t, map[string]any{"mode": "fast", "x": 1, "y": 2}, args.Keyword)
	})

	t.Run("typed slices and scalars", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{"first": 1, "rest": []string{"a", "b"}, "mode": "m"})
		require.NoError(t, err)
		assert.Equal(t, []any{1, "a", "b"}, args.Positional)

		args, err = plan.Bind(map[string]any{"first": 1, "rest": "solo", "mode": "m"})
		require.NoError(t, err)
		assert.Equal(t, []any{1, "solo"}, args.Positional)
	})

	t.Run("absent variadics bind nothing", func(t *testing.T) {
		t.Parallel()

		args, err := plan.Bind(map[string]any{"first": 1, "mode": "m"})
		require.NoError(t, err)
		assert.Equal(t, []any{1}, args.Positional)
		assert.Nil(t, args.Rest())
		assert.Equal(t, map[string]any{"mode": "m"}, args.Keyword)
	})

	t.Run("var-keyword requires mapping", func(t *testing.T) {
		t.Parallel()

		_, err := plan.Bind(map[string]any{"first": 1, "mode": "m", "extra": []any{1}})
		assert.ErrorIs(t, err, binder.ErrBinding)
	})

	t.Run("var-keyword cannot shadow keyword", func(t *testing.T) {
		t.Parallel()

		_, err := plan.Bind(map[string]any{"first": 1, "mode": "m", "extra": map[string]any{"mode": "slow"}})
		assert.ErrorIs(t, err, binder.ErrBinding)
	})

	t.Run("var-keyword cannot shadow positional", func(t *testing.T) {
		t.Parallel()

		_, err := plan.Bind(map[string]any{"first": 1, "mode": "m", "extra": map[string]any{"first": "nine"}})
		assert.ErrorIs(t, err, binder.ErrBinding)

		typed := binder.MustCompile(binder.Signature{binder.Arg("x", binder.Int), binder.VarKwArgs("kw")})
		_, err = typed.Bind(map[string]any{"x": 5, "kw": map[string]any{"x": "nine"}})
		assert.ErrorIs(t, err, binder.ErrBinding)

		args, err := typed.Bind(map[string]any{"x": 5, "kw": map[string]any{"y": 1}})
		require.NoError(t, err)
		x, err := binder.Get[int](args, "x")
		require.NoError(t, err)
		assert.Equal(t, 5, x)
	})
}
