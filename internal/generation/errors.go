package generation

import "errors"

// Common errors returned by Generator implementations.
var (
	// ErrGenerationFailed is returned when the inference call fails at the
	// transport or service level.
	ErrGenerationFailed = errors.New("failed to generate content from prompt")

	// ErrInvalidResponse is returned when the service response cannot be
	// parsed or is malformed.
	ErrInvalidResponse = errors.New("invalid response from inference service")

	// ErrInvalidConfig is returned when a generator is constructed with
	// invalid configuration.
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when Generate is called with an empty or
	// whitespace-only prompt.
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
