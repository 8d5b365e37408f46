package main

import (
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/site-pager/internal/storage/factory"
	"github.com/DjordjeVuckovic/site-pager/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type PagerApiConfig struct {
	StorageConfig factory.StorageConfig
}

func (as *AppConfig) LoadDotEnv() {
	if err := env.LoadDotEnv(as.ENV, "cmd/pager_api/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}
}

func (as *AppConfig) Load() (*PagerApiConfig, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}

	return &PagerApiConfig{
		StorageConfig: *storageCfg,
	}, nil
}
