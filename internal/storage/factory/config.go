package factory

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/es"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/pg"
	"github.com/DjordjeVuckovic/site-pager/pkg/utils"
	"github.com/go-playground/validator/v10"
)

type StorageConfig struct {
	Type     storage.Type     `validate:"required,oneof=es pg in_mem"`
	Pg       *pg.PoolConfig   `validate:"required_if=Type pg"`
	Es       *es.ClientConfig `validate:"required_if=Type es"`
	SeedPath string
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func LoadEnv() (*StorageConfig, error) {
	cfg := &StorageConfig{
		Type:     storage.Type(strings.TrimSpace(os.Getenv("STORAGE_TYPE"))),
		SeedPath: os.Getenv("SEED_PATH"),
	}

	switch cfg.Type {
	case storage.ES:
		cfg.Es = &es.ClientConfig{
			Addresses: utils.RemoveEmptyStrings(utils.SplitAndTrim(os.Getenv("ES_ADDRESSES"), ",")),
			IndexName: os.Getenv("ES_INDEX_NAME"),
			Username:  os.Getenv("ES_USERNAME"),
			Password:  os.Getenv("ES_PASSWORD"),
		}
	case storage.PG:
		cfg.Pg = &pg.PoolConfig{
			ConnStr: os.Getenv("PG_CONNECTION_STRING"),
		}
		if v := os.Getenv("PG_MAX_CONNS"); v != "" {
			n, err := strconv.ParseInt(v, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("invalid PG_MAX_CONNS value %q: %w", v, err)
			}
			cfg.Pg.MaxConns = int32(n)
		}
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid storage configuration", "type", cfg.Type, "error", err)
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first problem of each misconfigured field.
func (c *StorageConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("storage configuration is invalid: %w", err)
	}
	return nil
}
