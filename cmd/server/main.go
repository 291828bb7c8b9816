// Package main implements the entry point for the Blogsmith API server,
// which turns a topic, expertise level, and optional context into generated
// blog content via AWS Bedrock and archives every result to S3.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/joho/godotenv"

	"github.com/blogsmith/blogsmith-api/internal/api"
	"github.com/blogsmith/blogsmith-api/internal/config"
	"github.com/blogsmith/blogsmith-api/internal/platform/bedrock"
	"github.com/blogsmith/blogsmith-api/internal/platform/logger"
	"github.com/blogsmith/blogsmith-api/internal/platform/s3store"
	"github.com/blogsmith/blogsmith-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	appLogger, router, cfg, err := initializeApp(context.Background())
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}

	if err := startHTTPServer(appLogger, cfg.Server, router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, builds the AWS
// clients, and wires the handler graph. Returns the logger, the configured
// router, and the loaded config.
func initializeApp(ctx context.Context) (*slog.Logger, http.Handler, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"region", cfg.AWS.Region,
		"model_id", cfg.LLM.ModelID,
		"bucket", cfg.Storage.Bucket)

	// Retry and read timeout are transport-layer concerns, applied here
	// once rather than around each call site.
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.AWS.Region),
		awsconfig.WithRetryMaxAttempts(cfg.LLM.MaxRetryAttempts),
	)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	bedrockClient := bedrockruntime.NewFromConfig(awsCfg, func(o *bedrockruntime.Options) {
		o.HTTPClient = &http.Client{
			Timeout: time.Duration(cfg.LLM.ReadTimeoutSeconds) * time.Second,
		}
	})
	s3Client := s3.NewFromConfig(awsCfg)

	generator, err := bedrock.NewGenerator(appLogger, cfg.LLM, bedrockClient)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create generator: %w", err)
	}

	sink, err := s3store.NewSink(appLogger, s3Client, cfg.Storage)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create storage sink: %w", err)
	}

	contentService, err := service.NewContentService(appLogger, generator, sink)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create content service: %w", err)
	}

	contentHandler := api.NewContentHandler(contentService, appLogger)

	return appLogger, newRouter(contentHandler), cfg, nil
}
