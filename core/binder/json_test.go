package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/labkit/core/binder"
)

func TestJSON(t *testing.T) {
	t.Parallel()

	newRequest := func(body, contentType string) *http.Request {
		var r *http.Request
		if body == "" {
			r = httptest.NewRequest(http.MethodPost, "/invoke", nil)
		} else {
			r = httptest.NewRequest(http.MethodPost, "/invoke", strings.NewReader(body))
		}
		if contentType != "" {
			r.Header.Set("Content-Type", contentType)
		}
		return r
	}

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		payload, err := binder.JSON(newRequest(`{"tool_name":"calculator","arguments":{"expression":"1+1"}}`, "application/json; charset=utf-8"))
		require.NoError(t, err)
		assert.Equal(t, "calculator", payload["tool_name"])
		assert.Equal(t, map[string]any{"expression": "1+1"}, payload["arguments"])
	})

	t.Run("implicit content type", func(t *testing.T) {
		t.Parallel()

		payload, err := binder.JSON(newRequest(`{"n":1}`, ""))
		require.NoError(t, err)
		assert.Equal(t, 1.0, payload["n"])
	})

	t.Run("empty body", func(t *testing.T) {
		t.Parallel()

		payload, err := binder.JSON(newRequest("", "application/json"))
		require.NoError(t, err)
		assert.Empty(t, payload)

		payload, err = binder.JSON(newRequest("  ", "application/json"))
		require.NoError(t, err)
		assert.Empty(t, payload)
	})

	t.Run("null body", func(t *testing.T) {
		t.Parallel()

		payload, err := binder.JSON(newRequest("null", "application/json"))
		require.NoError(t, err)
		assert.NotNil(t, payload)
		assert.Empty(t, payload)
	})

	t.Run("wrong media type", func(t *testing.T) {
		t.Parallel()

		_, err := binder.JSON(newRequest(`{}`, "text/plain"))
		assert.ErrorIs(t, err, binder.ErrUnsupportedMediaType)
	})

	t.Run("not an object", func(t *testing.T) {
		t.Parallel()

		_, err := binder.JSON(newRequest(`[1,2]`, "application/json"))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("trailing data", func(t *testing.T) {
		t.Parallel()

		_, err := binder.JSON(newRequest(`{"a":1}{"b":2}`, "application/json"))
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()

		_, err := binder.JSONWithLimit(newRequest(`{"a":"0123456789"}`, "application/json"), 8)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r := newRequest(`{}`, "application/json").WithContext(ctx)

		_, err := binder.JSON(r)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}
