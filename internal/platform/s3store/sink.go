// Package s3store implements the storage.Sink interface on top of Amazon S3.
package s3store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/storage"
)

// contentType is fixed: generated content is always stored as plain text.
const contentType = "text/plain"

// ObjectPutter is the subset of the S3 client used by the sink. The concrete
// *s3.Client satisfies it; tests supply a mock.
type ObjectPutter interface {
	PutObject(
		ctx context.Context,
		params *s3.PutObjectInput,
		optFns ...func(*s3.Options),
	) (*s3.PutObjectOutput, error)
}

// Sink writes normalized content to a fixed S3 bucket under timestamp-derived
// keys.
type Sink struct {
	logger *slog.Logger
	client ObjectPutter
	cfg    config.StorageConfig

	// now is the clock used for key derivation; replaced in tests.
	now func() time.Time
}

// NewSink creates a Sink with the provided dependencies.
func NewSink(logger *slog.Logger, client ObjectPutter, cfg config.StorageConfig) (*Sink, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, errors.New("s3 client cannot be nil")
	}
	if cfg.Bucket == "" {
		return nil, errors.New("storage bucket cannot be empty")
	}
	if cfg.KeyPrefix == "" {
		return nil, errors.New("storage key prefix cannot be empty")
	}

	return &Sink{
		logger: logger,
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}, nil
}

// Store writes the content under a key derived from the current time and
// returns that key. The call is bounded by the configured storage timeout.
func (s *Sink) Store(ctx context.Context, content string) (string, error) {
	key := storage.ObjectKey(s.cfg.KeyPrefix, s.now())

	if s.cfg.TimeoutSeconds > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.cfg.TimeoutSeconds)*time.Second)
		defer cancel()
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        strings.NewReader(content),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", key, err)
	}

	s.logger.InfoContext(ctx, "content persisted",
		"bucket", s.cfg.Bucket,
		"key", key,
		"bytes", len(content))

	return key, nil
}
