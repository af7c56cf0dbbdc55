package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	DataDir     string `env:"DATA_DIR,      default=./data"`
	ResumesDir  string `env:"RESUMES_DIR,   default=./data/resumes"`
	MaxUploadMB int    `env:"MAX_UPLOAD_MB, default=10"`

	Admin  AdminConfig
	Gemini GeminiConfig
}

// AdminConfig seeds the first credential-store row.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@admin.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123"`
}

type GeminiConfig struct {
	APIKey string `env:"GEMINI_API_KEY"`
	Model  string `env:"GEMINI_MODEL, default=gemini-1.5-flash"`
	// Timeout bounds the blocking scoring call; expiry degrades into the
	// invocation-failure result instead of hanging the request.
	Timeout time.Duration `env:"SCORING_TIMEOUT, default=30s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY is required")
	}
	return &cfg, nil
}
