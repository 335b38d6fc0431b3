package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/handler"
	"github.com/dmitrymomot/labkit/core/model"
	"github.com/dmitrymomot/labkit/pkg/async"
)

type greeting struct {
	Name string `json:"name"`
}

func (g *greeting) FromMap(m map[string]any) error { return model.Decode(m, g) }
func (g *greeting) ToMap() map[string]any          { return model.Flatten(g) }

func TestNew(t *testing.T) {
	t.Parallel()

	sig := binder.Signature{binder.Arg("n", binder.Int)}
	h := handler.New(sig, func(ctx context.Context, args *binder.Args) (any, error) {
		return args.Arg(0).(int) * 2, nil
	})

	assert.Equal(t, sig, h.Signature())

	v, err := handler.Await(context.Background(), h, binder.NewArgs([]any{21}, nil))
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestNewAsync(t *testing.T) {
	t.Parallel()

	h := handler.NewAsync(nil, func(ctx context.Context, args *binder.Args) *async.Future[any] {
		return async.Async(ctx, "ok", func(ctx context.Context, s string) (any, error) {
			time.Sleep(5 * time.Millisecond)
			return s, nil
		})
	})

	v, err := handler.Await(context.Background(), h, binder.NewArgs(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, "ok", v)

	nilFuture := handler.NewAsync(nil, func(ctx context.Context, args *binder.Args) *async.Future[any] {
		return nil
	})
	v, err = handler.Await(context.Background(), nilFuture, binder.NewArgs(nil, nil))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNoArgs(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	h := handler.NoArgs(func(ctx context.Context) (any, error) { return nil, boom })

	assert.Empty(t, h.Signature())
	_, err := handler.Await(context.Background(), h, binder.NewArgs(nil, nil))
	assert.ErrorIs(t, err, boom)
}

func TestWithModel(t *testing.T) {
	t.Parallel()

	h := handler.WithModel("request", func(ctx context.Context, req *greeting) (any, error) {
		return "hello " + req.Name, nil
	})

	require.Len(t, h.Signature(), 1)
	assert.True(t, h.Signature()[0].Type.IsModel())

	args, err := binder.MustCompile(h.Signature()).Bind(map[string]any{"name": "gopher"})
	require.NoError(t, err)

	v, err := handler.Await(context.Background(), h, args)
	require.NoError(t, err)
	assert.Equal(t, "hello gopher", v)

	_, err = handler.Await(context.Background(), h, binder.NewArgs(nil, nil))
	assert.ErrorIs(t, err, binder.ErrMissingArgument)
}

func TestSplit(t *testing.T) {
	t.Parallel()

	payload, status := handler.Split(handler.WithStatus([]string{"x", "y"}, http.StatusCreated))
	assert.Equal(t, []string{"x", "y"}, payload)
	assert.Equal(t, http.StatusCreated, status)

	r := handler.WithStatus("p", http.StatusAccepted)
	payload, status = handler.Split(&r)
	assert.Equal(t, "p", payload)
	assert.Equal(t, http.StatusAccepted, status)

	payload, status = handler.Split(map[string]any{"ok": true})
	assert.Equal(t, map[string]any{"ok": true}, payload)
	assert.Equal(t, http.StatusOK, status)
}
