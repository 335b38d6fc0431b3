package binder

import (
	"bytes"
	"fmt"
	"io"
	"mime"
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

// DefaultMaxJSONSize is the default maximum size for JSON request bodies (1MB).
const DefaultMaxJSONSize = 1 << 20 // 1 MB

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// JSON reads the request body as a JSON object payload.
// An empty body yields an empty payload. A missing Content-Type is treated as
// application/json; any other media type is rejected.
func JSON(r *http.Request) (map[string]any, error) {
	return JSONWithLimit(r, DefaultMaxJSONSize)
}

// JSONWithLimit is JSON with a custom body size limit in bytes.
func JSONWithLimit(r *http.Request, limit int64) (map[string]any, error) {
	// Fail fast if request context is already cancelled to avoid processing doomed requests
	if ctx := r.Context(); ctx != nil {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, ctx.Err())
		default:
		}
	}

	if r.Body == nil || r.Body == http.NoBody {
		return map[string]any{}, nil
	}

	if ct := r.Header.Get("Content-Type"); ct != "" {
		mediaType, _, err := mime.ParseMediaType(ct)
		if err != nil || mediaType != "application/json" {
			return nil, fmt.Errorf("%w: got %s, expected application/json", ErrUnsupportedMediaType, ct)
		}
	}

	// Read with +1 byte to detect oversized requests without reading them fully
	body, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read request body: %v", ErrFailedToParseJSON, err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("%w: request body too large (max %d bytes)", ErrFailedToParseJSON, limit)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	decoder := json.NewDecoder(bytes.NewReader(body))

	var payload map[string]any
	if err := decoder.Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToParseJSON, err)
	}

	// Reject trailing data after a valid object
	var extra jsoniter.RawMessage
	if err := decoder.Decode(&extra); err != io.EOF {
		return nil, fmt.Errorf("%w: unexpected data after JSON object", ErrFailedToParseJSON)
	}

	if payload == nil {
		// A literal null body
		payload = map[string]any{}
	}
	return payload, nil
}
