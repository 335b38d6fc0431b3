package model

import "errors"

var (
	// ErrDecode indicates the mapping could not be decoded into the model.
	ErrDecode = errors.New("failed to decode model")

	// ErrValidation indicates the decoded model violates its validate tags.
	ErrValidation = errors.New("model validation failed")
)
