package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the runtime configuration, read from the environment.
type Config struct {
	// APIBaseURL is where the Personal Finance Tracker API lives.
	APIBaseURL string `env:"FINTRACK_API_URL, default=http://localhost:8000/api/v1"`
	// LogLevel is the minimum zerolog level: trace, debug, info, warn, error.
	LogLevel string `env:"FINTRACK_LOG_LEVEL, default=warn"`
	// HTTPTimeout bounds every API call end to end.
	HTTPTimeout time.Duration `env:"FINTRACK_HTTP_TIMEOUT, default=30s"`
}

func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("load configuration: %w", err)
	}

	return cfg, nil
}
