// Package domain contains the core entities and validation rules of the
// content generation pipeline, independent of transport and vendors.
package domain

import "strings"

// Canonical expertise levels offered by the front end. The field is an open
// string: callers may pass other audiences and they flow into the prompt
// verbatim.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// BlogRequest is a validated content generation request.
type BlogRequest struct {
	// Topic is the subject of the blog post. Non-empty after trimming.
	Topic string

	// Level is the target audience's expertise level. Defaults to
	// LevelIntermediate when the caller omits it.
	Level string

	// Context is optional free-form guidance for the model. May be empty.
	Context string
}

// NewBlogRequest builds a BlogRequest from raw caller input, applying the
// trimming and defaulting rules. Returns ErrEmptyTopic when the topic is
// absent or whitespace-only.
func NewBlogRequest(topic, level, contextText string) (BlogRequest, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return BlogRequest{}, ErrEmptyTopic
	}

	if level == "" {
		level = LevelIntermediate
	}

	return BlogRequest{
		Topic:   topic,
		Level:   level,
		Context: contextText,
	}, nil
}
