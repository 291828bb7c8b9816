package generation

import "strings"

// FallbackContent is returned in place of unusable inference output. The
// exact wording is part of the external contract.
const FallbackContent = "Failed to generate content. Please try again."

// Normalize guarantees a non-empty, trimmed text result. Genuine content is
// passed through trimmed; anything empty after trimming is replaced with
// FallbackContent. Normalize never returns an empty string, and normalizing
// already-normalized text returns it unchanged.
func Normalize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return FallbackContent
	}
	return trimmed
}
