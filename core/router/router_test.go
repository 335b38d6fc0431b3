package router_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/handler"
	"github.com/dmitrymomot/labkit/core/response"
	"github.com/dmitrymomot/labkit/core/router"
)

func constant(v any) handler.Handler {
	return handler.NoArgs(func(ctx context.Context) (any, error) { return v, nil })
}

func TestParseMethod(t *testing.T) {
	t.Parallel()

	m, err := router.ParseMethod("get")
	require.NoError(t, err)
	assert.Equal(t, router.GET, m)

	m, err = router.ParseMethod("POST")
	require.NoError(t, err)
	assert.Equal(t, router.POST, m)

	_, err = router.ParseMethod("PUT")
	assert.ErrorIs(t, err, router.ErrInvalidMethod)
}

func TestRegisterReturnsHandler(t *testing.T) {
	t.Parallel()

	routes := router.New()
	h := constant("first")

	assert.Same(t, h, routes.Get("/tools", h))
	assert.Same(t, h, routes.Post("/invoke", h))
	assert.Equal(t, 2, routes.Len())
}

func TestRegisterOverwrites(t *testing.T) {
	t.Parallel()

	routes := router.New()
	first := constant("first")
	second := constant("second")

	routes.Get("/tools", first)
	routes.Get("/tools", second, response.List(nil))

	route, err := routes.Lookup(router.GET, "/tools")
	require.NoError(t, err)
	assert.Same(t, second, route.Handler)
	assert.NotNil(t, route.Shape)
	assert.Equal(t, 1, routes.Len())
}

func TestLookup(t *testing.T) {
	t.Parallel()

	routes := router.New()
	routes.Post("/invoke", constant(nil))

	_, err := routes.Lookup(router.POST, "/missing")
	assert.ErrorIs(t, err, router.ErrNotFound)

	_, err = routes.Lookup(router.GET, "/invoke")
	assert.ErrorIs(t, err, router.ErrNotFound)

	route, err := routes.Lookup("post", "/invoke")
	require.NoError(t, err)
	assert.Equal(t, router.POST, route.Method)
	assert.Equal(t, "/invoke", route.Path)
	assert.Nil(t, route.Shape)
}

func TestRouteBind(t *testing.T) {
	t.Parallel()

	routes := router.New()
	routes.Post("/double", handler.New(
		binder.Signature{binder.Arg("n", binder.Int)},
		func(ctx context.Context, args *binder.Args) (any, error) {
			return args.Arg(0).(int) * 2, nil
		},
	))

	route, err := routes.Lookup(router.POST, "/double")
	require.NoError(t, err)

	args, err := route.Bind(map[string]any{"n": "4"})
	require.NoError(t, err)
	assert.Equal(t, []any{4}, args.Positional)

	var zero router.Route
	args, err = zero.Bind(nil)
	require.NoError(t, err)
	assert.Empty(t, args.Positional)
}

func TestRegisterPanics(t *testing.T) {
	t.Parallel()

	routes := router.New()

	assert.Panics(t, func() { routes.Register("PUT", "/x", constant(nil), nil) })
	assert.Panics(t, func() { routes.Get("no-slash", constant(nil)) })
	assert.Panics(t, func() { routes.Get("", constant(nil)) })
	assert.Panics(t, func() { routes.Get("/nil", nil) })
	assert.Panics(t, func() {
		routes.Post("/bad", handler.New(
			binder.Signature{binder.Arg("a", binder.Any), binder.Arg("a", binder.Any)},
			func(ctx context.Context, args *binder.Args) (any, error) { return nil, nil },
		))
	})
	assert.Equal(t, 0, routes.Len())
}

func TestRoutes(t *testing.T) {
	t.Parallel()

	routes := router.New()
	routes.Post("/invoke", constant(nil))
	routes.Get("/tools", constant(nil))
	routes.Get("/health", constant(nil))
	routes.Post("/health", constant(nil))

	got := routes.Routes()
	require.Len(t, got, 4)

	type pair struct {
		method router.Method
		path   string
	}
	var pairs []pair
	for _, r := range got {
		pairs = append(pairs, pair{r.Method, r.Path})
	}
	assert.Equal(t, []pair{
		{router.GET, "/health"},
		{router.POST, "/health"},
		{router.POST, "/invoke"},
		{router.GET, "/tools"},
	}, pairs)
}
