package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"  validate:"required"`
	AWS     AWSConfig     `mapstructure:"aws"     validate:"required"`
	LLM     LLMConfig     `mapstructure:"llm"     validate:"required"`
	Storage StorageConfig `mapstructure:"storage" validate:"required"`
}

// ServerConfig contains all HTTP server related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// AWSConfig contains the settings shared by every AWS client the
// application constructs.
type AWSConfig struct {
	Region string `mapstructure:"region" validate:"required"`
}

// LLMConfig contains all inference related settings. The retry and timeout
// values are applied at the transport layer when the Bedrock client is
// built; they are configuration, not literals at the call site.
type LLMConfig struct {
	ModelID            string  `mapstructure:"model_id"             validate:"required"`
	MaxGenLen          int     `mapstructure:"max_gen_len"          validate:"required,gt=0"`
	Temperature        float64 `mapstructure:"temperature"          validate:"gte=0,lte=1"`
	TopP               float64 `mapstructure:"top_p"                validate:"gte=0,lte=1"`
	ReadTimeoutSeconds int     `mapstructure:"read_timeout_seconds" validate:"required,gt=0"`
	MaxRetryAttempts   int     `mapstructure:"max_retry_attempts"   validate:"required,gte=1"`
}

// StorageConfig contains all object storage related settings.
type StorageConfig struct {
	Bucket         string `mapstructure:"bucket"          validate:"required"`
	KeyPrefix      string `mapstructure:"key_prefix"      validate:"required"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" validate:"required,gt=0"`
}
