// Package storage defines the persistence boundary for generated content.
// Implementations live under internal/platform; the application core depends
// only on this package.
package storage

import "context"

// Sink persists normalized content to durable object storage.
type Sink interface {
	// Store writes the content as a plain-text object and returns the key
	// it was written under. The write is best-effort from the pipeline's
	// point of view: callers absorb errors and reflect them only in the
	// response message, never in the generated content.
	Store(ctx context.Context, content string) (string, error)
}
