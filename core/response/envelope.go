package response

import "net/http"

// Envelope is the normalized result of a dispatched request.
type Envelope struct {
	Status int
	Body   any
}

// OK wraps body in a 200 envelope.
func OK(body any) Envelope {
	return Envelope{Status: http.StatusOK, Body: body}
}

// FromError builds the envelope for an HTTPError.
func FromError(err *HTTPError) Envelope {
	return Envelope{Status: err.Status, Body: err.Body()}
}
