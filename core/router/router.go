package router

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/labkit/core/binder"
	"github.com/dmitrymomot/labkit/core/handler"
	"github.com/dmitrymomot/labkit/core/response"
)

// Method is a supported HTTP method.
type Method string

// Supported methods.
const (
	GET  Method = http.MethodGet
	POST Method = http.MethodPost
)

// ParseMethod validates a method name, case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch m := Method(strings.ToUpper(s)); m {
	case GET, POST:
		return m, nil
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidMethod, s)
}

// Route describes a single registered route.
type Route struct {
	Method  Method
	Path    string
	Handler handler.Handler
	Shape   response.Shape

	plan *binder.Plan
}

// Bind resolves the handler's parameters against payload using the plan
// compiled at registration.
func (r Route) Bind(payload map[string]any) (*binder.Args, error) {
	if r.plan == nil {
		return binder.MustCompile(nil).Bind(payload)
	}
	return r.plan.Bind(payload)
}

type routeKey struct {
	method Method
	path   string
}

// Table maps (method, path) pairs to handlers. It is built once at startup
// and passed to whatever serves it; there is no global registry.
// Safe for concurrent use.
type Table struct {
	mu     sync.RWMutex
	routes map[routeKey]Route
	logger *slog.Logger
}

// New creates an empty route table.
func New(opts ...Option) *Table {
	t := &Table{
		routes: make(map[routeKey]Route),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Get registers a handler for GET requests and returns it unchanged.
func (t *Table) Get(path string, h handler.Handler, shape ...response.Shape) handler.Handler {
	return t.Register(GET, path, h, firstShape(shape))
}

// Post registers a handler for POST requests and returns it unchanged.
func (t *Table) Post(path string, h handler.Handler, shape ...response.Shape) handler.Handler {
	return t.Register(POST, path, h, firstShape(shape))
}

// Register stores a route and returns h unchanged. Registering the same
// method and path again replaces the previous route.
// Panics on an invalid method, path or handler signature, since those are
// programming errors caught at startup.
func (t *Table) Register(method Method, path string, h handler.Handler, shape response.Shape) handler.Handler {
	m, err := ParseMethod(string(method))
	if err != nil {
		panic(err)
	}
	if len(path) == 0 || path[0] != '/' {
		panic(fmt.Errorf("%w: '%s'", ErrInvalidPattern, path))
	}
	if h == nil {
		panic(fmt.Errorf("%w on '%s %s'", ErrNilHandler, m, path))
	}

	plan, err := binder.Compile(h.Signature())
	if err != nil {
		panic(fmt.Errorf("route '%s %s': %w", m, path, err))
	}

	key := routeKey{method: m, path: path}

	t.mu.Lock()
	_, replaced := t.routes[key]
	t.routes[key] = Route{Method: m, Path: path, Handler: h, Shape: shape, plan: plan}
	t.mu.Unlock()

	if replaced {
		t.logger.Debug("route replaced", "method", string(m), "path", path)
	} else {
		t.logger.Debug("route registered", "method", string(m), "path", path)
	}

	return h
}

// Lookup returns the route registered for method and path.
// A miss returns ErrNotFound.
func (t *Table) Lookup(method Method, path string) (Route, error) {
	t.mu.RLock()
	r, ok := t.routes[routeKey{method: Method(strings.ToUpper(string(method))), path: path}]
	t.mu.RUnlock()

	if !ok {
		return Route{}, fmt.Errorf("%w: %s %s", ErrNotFound, method, path)
	}
	return r, nil
}

// Routes returns all registered routes sorted by path, then method.
func (t *Table) Routes() []Route {
	t.mu.RLock()
	out := make([]Route, 0, len(t.routes))
	for _, r := range t.routes {
		out = append(out, r)
	}
	t.mu.RUnlock()

	slices.SortFunc(out, func(a, b Route) int {
		if c := cmp.Compare(a.Path, b.Path); c != 0 {
			return c
		}
		return cmp.Compare(a.Method, b.Method)
	})
	return out
}

// Len returns the number of registered routes.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.routes)
}

func firstShape(shapes []response.Shape) response.Shape {
	if len(shapes) == 0 {
		return nil
	}
	return shapes[0]
}
