package response

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError is the one error kind the dispatcher turns into a structured
// response. It carries its own status code and a detail payload.
type HTTPError struct {
	Status int `json:"-"`      // HTTP status code (not in JSON)
	Detail any `json:"detail"` // Any JSON-serializable value
}

// NewHTTPError creates an HTTPError with the given status and detail.
// A nil detail defaults to the status text.
func NewHTTPError(status int, detail any) *HTTPError {
	if detail == nil {
		detail = http.StatusText(status)
	}
	return &HTTPError{Status: status, Detail: detail}
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if s, ok := e.Detail.(string); ok {
		return s
	}
	return fmt.Sprintf("%d %s: %v", e.Status, http.StatusText(e.Status), e.Detail)
}

// StatusCode returns the HTTP status code for the error.
func (e *HTTPError) StatusCode() int {
	return e.Status
}

// Body returns the response body for the error: {"detail": Detail}.
func (e *HTTPError) Body() map[string]any {
	return map[string]any{"detail": e.Detail}
}

// WithDetail returns a copy of the error with a different detail payload.
func (e *HTTPError) WithDetail(detail any) *HTTPError {
	cp := *e
	cp.Detail = detail
	return &cp
}

// Predefined HTTP errors using http.StatusText for default details.
var (
	ErrBadRequest           = NewHTTPError(http.StatusBadRequest, nil)
	ErrNotFound             = NewHTTPError(http.StatusNotFound, nil)
	ErrMethodNotAllowed     = NewHTTPError(http.StatusMethodNotAllowed, nil)
	ErrUnsupportedMediaType = NewHTTPError(http.StatusUnsupportedMediaType, nil)
	ErrUnprocessableEntity  = NewHTTPError(http.StatusUnprocessableEntity, nil)
	ErrInternalServerError  = NewHTTPError(http.StatusInternalServerError, nil)
)

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

// AsHTTPError converts any error to an *HTTPError.
// An *HTTPError anywhere in the chain is returned as is; otherwise the status
// comes from a StatusCode() method or defaults to 500, and the detail is the
// status text so internal messages do not leak.
func AsHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}
	return NewHTTPError(status, nil)
}
