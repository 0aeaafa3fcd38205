package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	sessionrender "github.com/edenis00/fintrack-cli/internal/adapters/render/session"
	tomlrepo "github.com/edenis00/fintrack-cli/internal/adapters/repo/toml"
	chainstore "github.com/edenis00/fintrack-cli/internal/adapters/secrets/chain"
	"github.com/edenis00/fintrack-cli/internal/api"
	"github.com/edenis00/fintrack-cli/internal/application"
	"github.com/edenis00/fintrack-cli/internal/config"
	"github.com/edenis00/fintrack-cli/internal/ports"
	"github.com/edenis00/fintrack-cli/internal/session"
	"github.com/edenis00/fintrack-cli/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type app struct {
	service        *application.Service
	client         *api.Client
	sessions       *session.Store
	statusRenderer func(application.Status, sessionrender.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	// A .env next to the binary is a development convenience; absence
	// is the normal case.
	_ = godotenv.Load()

	cfg, err := config.Load(context.Background())
	if err != nil {
		return nil, fmt.Errorf("wire configuration: %w", err)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel})

	secretStore, err := chainstore.NewDefault()
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}
	sessions := session.NewStore(secretStore)

	client, err := api.NewClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.HTTPTimeout}, sessions, log)
	if err != nil {
		return nil, fmt.Errorf("wire api client: %w", err)
	}

	profiles, err := tomlrepo.NewRepository(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire profile snapshot repository: %w", err)
	}

	return &app{
		service:        application.NewService(client, sessions, profiles, ports.SystemClock{}, log),
		client:         client,
		sessions:       sessions,
		statusRenderer: sessionrender.Render,
		now:            time.Now,
	}, nil
}
