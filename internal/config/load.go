package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and an optional config
// file. Environment variables use the BLOGSMITH_ prefix with underscores in
// place of dots (e.g. BLOGSMITH_STORAGE_BUCKET sets storage.bucket) and take
// precedence over values from the config file. Returns a populated Config
// struct or an error if loading or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("BLOGSMITH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; env vars and defaults cover it.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers a default for every known key so that viper exposes
// them all to Unmarshal even when only environment variables are set.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")

	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("llm.model_id", "us.meta.llama3-3-70b-instruct-v1:0")
	v.SetDefault("llm.max_gen_len", 512)
	v.SetDefault("llm.temperature", 0.5)
	v.SetDefault("llm.top_p", 0.9)
	v.SetDefault("llm.read_timeout_seconds", 300)
	v.SetDefault("llm.max_retry_attempts", 3)

	v.SetDefault("storage.bucket", "")
	v.SetDefault("storage.key_prefix", "generated-content")
	v.SetDefault("storage.timeout_seconds", 60)
}
