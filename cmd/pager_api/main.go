// Package main Site Pager API
// @title Site Pager API
// @version 1.0
// @description Pagination controls and CMS page listings for the marketing site
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/DjordjeVuckovic/site-pager/internal/metrics"
	"github.com/DjordjeVuckovic/site-pager/internal/router"
	"github.com/DjordjeVuckovic/site-pager/internal/server"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/factory"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	appSettings := NewAppConfig()
	appSettings.LoadDotEnv()

	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(sCfg.LogLevel)

	cfg, err := appSettings.Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	catalog, err := locale.DefaultCatalog()
	if err != nil {
		slog.Error("Failed to load message catalog", "error", err)
		os.Exit(1)
	}

	s := server.New(sCfg)

	backend, err := factory.NewBackend(s.Context(), cfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err, "type", cfg.StorageConfig.Type)
		os.Exit(1)
	}
	defer backend.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	s.SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health", backend.HealthChecker).
		SetupMetrics("/metrics", reg).
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Site Pager API is running")
	})

	router.NewPaginationRouter(s.Echo, catalog, m,
		router.WithLister(backend.Lister, cfg.StorageConfig.Type),
	).Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		backend.Close()
		os.Exit(1)
	}
}
