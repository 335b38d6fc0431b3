package response

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Responder writes a response. Rendering errors are returned to the caller.
type Responder func(w http.ResponseWriter, r *http.Request) error

// JSON creates an application/json response with 200 OK status.
func JSON(v any) Responder {
	return JSONWithStatus(v, http.StatusOK)
}

// JSONWithStatus creates an application/json response with custom status code.
// JSON encoding is performed directly to the response writer.
func JSONWithStatus(v any, status int) Responder {
	return func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")

		if status == 0 {
			if v == nil {
				status = http.StatusNoContent
			} else {
				status = http.StatusOK
			}
		}

		w.WriteHeader(status)

		// No body for 204 or 304
		switch status {
		case http.StatusNoContent, http.StatusNotModified:
			return nil
		}

		return json.NewEncoder(w).Encode(v)
	}
}

// JSONError writes err as {"detail": ...} with the status from AsHTTPError.
func JSONError(err error) Responder {
	httpErr := AsHTTPError(err)
	return JSONWithStatus(httpErr.Body(), httpErr.Status)
}
