package generation

import (
	"fmt"
	"strings"

	"github.com/blogsmith/blogsmith-api/internal/domain"
)

// promptFormat mirrors the instruction wording the model was tuned against.
// The first placeholder is the lower-cased audience level; the remaining
// three list the request fields verbatim. Fields are embedded unescaped,
// which leaves prompt injection possible; see DESIGN.md.
const promptFormat = `You are a helpful AI assistant. Follow these instructions exactly:

1. Generate a 200-300 word informative blog post on the following topic for a %s audience.
2. Do NOT add any comments, disclaimers, or follow-up dialogue. Always return the blog content as plain text.

Topic: %s
Expertise Level: %s
Additional Context: %s
`

// BuildPrompt deterministically renders a validated request into the single
// instruction string consumed by the inference service. It is a pure
// function: same request, same prompt.
func BuildPrompt(req domain.BlogRequest) string {
	return fmt.Sprintf(promptFormat,
		strings.ToLower(req.Level),
		req.Topic,
		req.Level,
		req.Context,
	)
}
