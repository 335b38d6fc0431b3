// Package testclient drives a dispatcher in-process, the way an HTTP client
// would drive the server, without opening a socket.
//
//	c := testclient.New(dispatch.New(routes))
//	resp, err := c.Post("/invoke", map[string]any{"tool_name": "calculator"})
//	require.NoError(t, err)
//	assert.Equal(t, 200, resp.StatusCode)
//	body := resp.JSON().(map[string]any)
package testclient

import (
	"context"
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/dmitrymomot/labkit/core/dispatch"
	"github.com/dmitrymomot/labkit/core/response"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client issues requests against a Dispatcher.
type Client struct {
	d *dispatch.Dispatcher
}

// New creates a client for d.
func New(d *dispatch.Dispatcher) *Client {
	return &Client{d: d}
}

// Response is the outcome of a request.
type Response struct {
	StatusCode int

	raw []byte
}

// JSON returns the body decoded from its JSON encoding, so numbers are
// float64 and models are plain maps.
func (r *Response) JSON() any {
	var v any
	if err := json.Unmarshal(r.raw, &v); err != nil {
		return nil
	}
	return v
}

// Decode unmarshals the body into v.
func (r *Response) Decode(v any) error {
	return json.Unmarshal(r.raw, v)
}

// Text returns the raw JSON body.
func (r *Response) Text() string {
	return string(r.raw)
}

// Get dispatches a GET request with an empty payload. path is matched
// verbatim; query strings are not parsed.
func (c *Client) Get(path string) (*Response, error) {
	return c.GetContext(context.Background(), path)
}

// GetContext is Get with a context.
func (c *Client) GetContext(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, map[string]any{})
}

// Post dispatches a POST request with payload as the JSON body.
func (c *Client) Post(path string, payload map[string]any) (*Response, error) {
	return c.PostContext(context.Background(), path, payload)
}

// PostContext is Post with a context.
func (c *Client) PostContext(ctx context.Context, path string, payload map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, payload)
}

// do returns errors the dispatcher propagates unchanged, so tests see the
// handler's own failure rather than a generic 500.
func (c *Client) do(ctx context.Context, method, path string, payload map[string]any) (*Response, error) {
	env, err := c.d.Dispatch(ctx, method, path, payload)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(response.Serialize(env.Body))
	if err != nil {
		return nil, fmt.Errorf("testclient: encode %s %s response: %w", method, path, err)
	}

	return &Response{StatusCode: env.Status, raw: raw}, nil
}
