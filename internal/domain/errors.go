package domain

import "errors"

// Validation errors. The error text is the caller-facing message and is
// surfaced verbatim in 400 responses, hence the sentence casing.
var (
	// ErrEmptyTopic is returned when the blog topic is absent or empty
	// after trimming whitespace.
	ErrEmptyTopic = errors.New("Blog topic is required")

	// ErrInvalidPayload is returned when the request body cannot be parsed
	// as JSON.
	ErrInvalidPayload = errors.New("Invalid JSON payload")
)
