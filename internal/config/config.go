package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/driveassist/backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`

	// External service configurations
	DriveCfg DriveConfig        `envPrefix:"DRIVE_"`
	LLMCfg   LLMConnectorConfig `envPrefix:"LLM_"`

	// Retrieval pipeline configuration
	RetrievalCfg RetrievalConfig `envPrefix:"RETRIEVAL_"`

	// Conversation session configuration
	SessionCfg SessionConfig `envPrefix:"SESSION_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// DriveConfig holds Google Drive client configuration
type DriveConfig struct {
	CredentialsFile   string        `env:"CREDENTIALS_FILE"`
	RequestTimeout    time.Duration `env:"TIMEOUT" envDefault:"30s"`
	DownloadChunkSize int           `env:"DOWNLOAD_CHUNK_SIZE" envDefault:"1048576"`
}

// LLMConnectorConfig holds the OpenRouter-compatible completion API configuration
type LLMConnectorConfig struct {
	BaseURL        string               `env:"BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	APIKey         string               `env:"API_KEY"`
	Model          string               `env:"MODEL" envDefault:"openai/gpt-3.5-turbo"`
	Temperature    float32              `env:"TEMPERATURE" envDefault:"0.7"`
	MaxTokens      int                  `env:"MAX_TOKENS" envDefault:"1000"`
	RequestTimeout time.Duration        `env:"TIMEOUT" envDefault:"60s"`
	Retry          pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// RetrievalConfig holds the context retrieval pipeline parameters
type RetrievalConfig struct {
	SearchLimit      int     `env:"SEARCH_LIMIT" envDefault:"10"`
	MaxContextFiles  int     `env:"MAX_CONTEXT_FILES" envDefault:"3"`
	MinContentLength int     `env:"MIN_CONTENT_LENGTH" envDefault:"50"`
	PerFileChars     int     `env:"PER_FILE_CHARS" envDefault:"1500"`
	OrderBy          string  `env:"ORDER_BY" envDefault:"modifiedTime desc"`
	HighConfidence   float64 `env:"HIGH_CONFIDENCE" envDefault:"0.7"`
}

// SessionConfig holds conversation history limits
type SessionConfig struct {
	HistoryLimit    int           `env:"HISTORY_LIMIT" envDefault:"20"`
	HistoryWindow   int           `env:"HISTORY_WINDOW" envDefault:"10"`
	TTL             time.Duration `env:"TTL" envDefault:"1h"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL" envDefault:"10m"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = *envFlag

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

var allowedOrderBy = map[string]bool{
	"modifiedTime desc": true,
	"modifiedTime":      true,
	"name":              true,
	"name desc":         true,
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.RetrievalCfg.SearchLimit < 1 || cfg.RetrievalCfg.SearchLimit > 100 {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_SEARCH_LIMIT must be between 1 and 100, got %d", cfg.RetrievalCfg.SearchLimit))
	}

	if cfg.RetrievalCfg.MaxContextFiles < 1 || cfg.RetrievalCfg.MaxContextFiles > 20 {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_MAX_CONTEXT_FILES must be between 1 and 20, got %d", cfg.RetrievalCfg.MaxContextFiles))
	}

	if cfg.RetrievalCfg.PerFileChars < 200 {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_PER_FILE_CHARS must be at least 200, got %d", cfg.RetrievalCfg.PerFileChars))
	}

	if cfg.RetrievalCfg.HighConfidence <= 0 || cfg.RetrievalCfg.HighConfidence > 1 {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_HIGH_CONFIDENCE must be in (0, 1], got %v", cfg.RetrievalCfg.HighConfidence))
	}

	if !allowedOrderBy[cfg.RetrievalCfg.OrderBy] {
		errors = append(errors, fmt.Sprintf("RETRIEVAL_ORDER_BY must be one of modifiedTime desc, modifiedTime, name, name desc, got %q", cfg.RetrievalCfg.OrderBy))
	}

	if cfg.SessionCfg.HistoryLimit < 2 || cfg.SessionCfg.HistoryLimit > 200 {
		errors = append(errors, fmt.Sprintf("SESSION_HISTORY_LIMIT must be between 2 and 200, got %d", cfg.SessionCfg.HistoryLimit))
	}

	if cfg.SessionCfg.HistoryWindow < 0 || cfg.SessionCfg.HistoryWindow > cfg.SessionCfg.HistoryLimit {
		errors = append(errors, fmt.Sprintf("SESSION_HISTORY_WINDOW must be between 0 and SESSION_HISTORY_LIMIT(%d), got %d", cfg.SessionCfg.HistoryLimit, cfg.SessionCfg.HistoryWindow))
	}

	if !cfg.EnableMocks && cfg.LLMCfg.APIKey == "" {
		errors = append(errors, "LLM_API_KEY must be set when mocks are disabled")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
