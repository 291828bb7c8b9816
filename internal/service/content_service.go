// Package service contains the application's use-case orchestration. The
// content pipeline lives here: prompt construction, inference, normalization,
// and persistence, with each external failure absorbed into a degraded but
// complete outcome.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/blogsmith/blogsmith-api/internal/domain"
	"github.com/blogsmith/blogsmith-api/internal/generation"
	"github.com/blogsmith/blogsmith-api/internal/redact"
	"github.com/blogsmith/blogsmith-api/internal/storage"
)

// Outcome carries the two independent results of a pipeline run. Generation
// and persistence succeed or fail separately; they are combined only at the
// HTTP formatting boundary.
type Outcome struct {
	// Blog is the normalized content. Never empty: it is either genuine
	// model output or generation.FallbackContent.
	Blog string

	// Fallback reports whether Blog is the fallback string rather than
	// genuine model output.
	Fallback bool

	// Persisted reports whether the storage write succeeded.
	Persisted bool

	// ObjectKey is the storage key the content was written under, empty
	// when the write failed.
	ObjectKey string
}

// ContentGenerator is the service interface the HTTP layer depends on.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, req domain.BlogRequest) Outcome
}

// ContentService implements ContentGenerator over an inference generator and
// a storage sink.
type ContentService struct {
	logger    *slog.Logger
	generator generation.Generator
	sink      storage.Sink
}

// NewContentService creates a ContentService with the provided dependencies.
func NewContentService(
	logger *slog.Logger,
	generator generation.Generator,
	sink storage.Sink,
) (*ContentService, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if generator == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if sink == nil {
		return nil, errors.New("sink cannot be nil")
	}

	return &ContentService{
		logger:    logger,
		generator: generator,
		sink:      sink,
	}, nil
}

// GenerateContent runs the pipeline for a validated request. It never
// returns an error: inference failures degrade to fallback content and
// persistence failures are reflected only in Outcome.Persisted. The write
// happens unconditionally, fallback content included.
func (s *ContentService) GenerateContent(ctx context.Context, req domain.BlogRequest) Outcome {
	prompt := generation.BuildPrompt(req)

	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.ErrorContext(ctx, "content generation failed",
			"topic", req.Topic,
			"error", redact.Error(err))
		text = ""
	}

	outcome := Outcome{
		Blog:     generation.Normalize(text),
		Fallback: strings.TrimSpace(text) == "",
	}

	key, err := s.sink.Store(ctx, outcome.Blog)
	if err != nil {
		s.logger.ErrorContext(ctx, "content persistence failed",
			"topic", req.Topic,
			"error", redact.Error(err))
		return outcome
	}

	outcome.Persisted = true
	outcome.ObjectKey = key
	return outcome
}
