package generation

import "context"

// Generator defines the interface for producing text from a rendered prompt.
// This interface serves as the boundary between the application core and the
// external inference service, following the hexagonal architecture pattern.
type Generator interface {
	// Generate sends the prompt to the inference service and returns the
	// extracted, whitespace-trimmed generation text. An empty string with a
	// nil error is a valid result; callers are expected to pass it through
	// Normalize before use.
	Generate(ctx context.Context, prompt string) (string, error)
}
