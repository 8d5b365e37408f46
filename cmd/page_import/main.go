package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/factory"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/site-pager/pkg/config/env"
)

var errVolatileStorage = errors.New("in_mem storage does not outlive the import, use pg or es")

func main() {
	seedPath := flag.String("file", "", "YAML file with the pages to import (defaults to SEED_PATH)")
	timeout := flag.Duration("timeout", 2*time.Minute, "maximum duration of the import")
	flag.Parse()

	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/page_import/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	if err := run(*seedPath, *timeout); err != nil {
		slog.Error("Import failed", "error", err)
		os.Exit(1)
	}
}

func run(seedPath string, timeout time.Duration) error {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return fmt.Errorf("load storage configuration: %w", err)
	}
	if err := checkImportTarget(storageCfg.Type); err != nil {
		return err
	}

	path := seedPath
	if path == "" {
		path = storageCfg.SeedPath
	}
	if path == "" {
		return errors.New("no seed file given, use -file or SEED_PATH")
	}

	pages, err := in_mem.LoadSeed(path)
	if err != nil {
		return fmt.Errorf("load seed file %s: %w", path, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	storer, closeStorer, err := factory.NewStorer(ctx, *storageCfg)
	if err != nil {
		return fmt.Errorf("create %s storer: %w", storageCfg.Type, err)
	}
	defer closeStorer()

	start := time.Now()
	if err := storer.SaveBulk(ctx, pages); err != nil {
		return fmt.Errorf("save pages: %w", err)
	}

	slog.Info("Import finished", "pages", len(pages), "type", storageCfg.Type, "took", time.Since(start))
	return nil
}

func checkImportTarget(t storage.Type) error {
	if t == storage.InMem {
		return errVolatileStorage
	}
	return nil
}
