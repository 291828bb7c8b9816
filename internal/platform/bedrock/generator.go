// Package bedrock implements the generation.Generator interface on top of
// the AWS Bedrock runtime InvokeModel API.
package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"

	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/generation"
)

// ModelInvoker is the subset of the Bedrock runtime client used by the
// generator. The concrete *bedrockruntime.Client satisfies it; tests supply
// a mock.
type ModelInvoker interface {
	InvokeModel(
		ctx context.Context,
		params *bedrockruntime.InvokeModelInput,
		optFns ...func(*bedrockruntime.Options),
	) (*bedrockruntime.InvokeModelOutput, error)
}

// Generator implements generation.Generator using a Bedrock-hosted text
// model. Transport retry and the read timeout are properties of the injected
// client, configured from config.LLMConfig at construction time in main.
type Generator struct {
	logger *slog.Logger
	cfg    config.LLMConfig
	client ModelInvoker
}

// NewGenerator creates a Generator with the provided dependencies.
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig, client ModelInvoker) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if client == nil {
		return nil, errors.New("bedrock client cannot be nil")
	}
	if cfg.ModelID == "" {
		return nil, fmt.Errorf("%w: model id cannot be empty", generation.ErrInvalidConfig)
	}
	if cfg.MaxGenLen <= 0 {
		return nil, fmt.Errorf("%w: max_gen_len must be positive", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger: logger,
		cfg:    cfg,
		client: client,
	}, nil
}

// Generate sends the prompt to the configured model and extracts the
// generation text from the response envelope. The full prompt and the raw
// response body are logged; both are operationally necessary to diagnose
// model behavior but may carry user-supplied context.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	body, err := json.Marshal(invokeRequest{
		Prompt:      prompt,
		MaxGenLen:   g.cfg.MaxGenLen,
		Temperature: g.cfg.Temperature,
		TopP:        g.cfg.TopP,
	})
	if err != nil {
		return "", fmt.Errorf("%w: marshal request body: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "invoking model",
		"model_id", g.cfg.ModelID,
		"prompt", prompt)

	out, err := g.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(g.cfg.ModelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        body,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", generation.ErrGenerationFailed, err)
	}

	g.logger.InfoContext(ctx, "model response received",
		"model_id", g.cfg.ModelID,
		"response_body", string(out.Body))

	var resp invokeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("%w: parse response body: %v", generation.ErrInvalidResponse, err)
	}

	return strings.TrimSpace(resp.Generation), nil
}
