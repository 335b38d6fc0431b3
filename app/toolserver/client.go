package toolserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrymomot/labkit/core/response"
)

// Client talks to a running tool server over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) ClientOption {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// NewClient creates a client for the server at baseURL, e.g.
// "http://127.0.0.1:8765".
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Health reports whether the server answers GET /health with {"ok": true}.
func (c *Client) Health(ctx context.Context) (bool, error) {
	var out struct {
		OK bool `json:"ok"`
	}
	if err := c.do(ctx, http.MethodGet, "/health", nil, &out); err != nil {
		return false, err
	}
	return out.OK, nil
}

// ListTools returns the server's tool catalog.
func (c *Client) ListTools(ctx context.Context) ([]ToolSchema, error) {
	var out []ToolSchema
	if err := c.do(ctx, http.MethodGet, "/tools", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Invoke calls POST /invoke and returns the result field. Tool failures come
// back as "Error..." strings, not errors.
func (c *Client) Invoke(ctx context.Context, tool string, args map[string]any) (any, error) {
	var out InvokeResponse
	req := InvokeRequest{ToolName: tool, Arguments: args}
	if err := c.do(ctx, http.MethodPost, "/invoke", req, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// Execute calls POST /execute. Non-2xx responses are returned as
// *response.HTTPError.
func (c *Client) Execute(ctx context.Context, tool string, args map[string]any) (any, error) {
	var out struct {
		Result any `json:"result"`
	}
	req := ExecuteRequest{Name: tool, Arguments: args}
	if err := c.do(ctx, http.MethodPost, "/execute", req, &out); err != nil {
		return nil, err
	}
	return out.Result, nil
}

// Shutdown asks the server to stop. Servers started without shutdown
// support answer 404.
func (c *Client) Shutdown(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/shutdown", map[string]any{}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s request: %w", method, path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build %s %s request: %w", method, path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read %s %s response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e struct {
			Detail any `json:"detail"`
		}
		if json.Unmarshal(raw, &e) != nil || e.Detail == nil {
			return response.NewHTTPError(resp.StatusCode, nil)
		}
		return response.NewHTTPError(resp.StatusCode, e.Detail)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// ParseArgs turns key=value pairs into tool arguments. Values that parse as
// JSON keep their JSON type; anything else is a string.
func ParseArgs(pairs []string) (map[string]any, error) {
	args := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: expected key=value, got %q", ErrInvalidArguments, p)
		}
		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			v = value
		}
		args[key] = v
	}
	return args, nil
}
