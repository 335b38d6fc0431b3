package handler

import "net/http"

// Result is a handler return value that carries its own status code.
type Result struct {
	Payload any
	Status  int
}

// WithStatus pairs a payload with a status code.
func WithStatus(payload any, status int) Result {
	return Result{Payload: payload, Status: status}
}

// Split separates a handler return value into payload and status.
// Values other than Result get 200.
func Split(v any) (any, int) {
	switch r := v.(type) {
	case Result:
		return r.Payload, r.Status
	case *Result:
		if r != nil {
			return r.Payload, r.Status
		}
	}
	return v, http.StatusOK
}
