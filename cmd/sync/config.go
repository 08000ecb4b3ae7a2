package main

import (
	"log/slog"
	"os"

	"github.com/mnovakovic/wp-appwrite-sync/internal/config"
	"github.com/mnovakovic/wp-appwrite-sync/pkg/config/env"
)

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type AppConfig struct {
	ENV string
}

// Load reads the invocation variables, with a dotenv fallback for local runs,
// plus the optional YAML options file named by SYNC_OPTIONS_PATH.
func (as *AppConfig) Load() (*config.Config, *config.Options, error) {
	if err := env.LoadDotEnv(as.ENV, "cmd/sync/.env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	cfg := config.Load()

	var opts *config.Options
	if path := os.Getenv("SYNC_OPTIONS_PATH"); path != "" {
		loaded, err := config.LoadOptionsFile(path)
		if err != nil {
			return nil, nil, err
		}
		opts = loaded
	}

	return cfg, opts, nil
}
