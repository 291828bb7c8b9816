package storage

import (
	"fmt"
	"time"
)

// keyTimeFormat renders the instant to second precision. Two writes within
// the same second therefore collide and the later one wins; the format is
// pinned by the external contract and deliberately left unguarded.
const keyTimeFormat = "20060102-150405"

// ObjectKey derives the deterministic storage key for content written at t.
// The result has the form <prefix>/<YYYYMMDD-HHmmss>.txt.
func ObjectKey(prefix string, t time.Time) string {
	return fmt.Sprintf("%s/%s.txt", prefix, t.Format(keyTimeFormat))
}
