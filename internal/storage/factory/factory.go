package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/es"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/pg"
	pkgserver "github.com/DjordjeVuckovic/site-pager/pkg/server"
)

// Backend bundles what the API needs from one configured store.
type Backend struct {
	Lister        storage.Lister
	HealthChecker pkgserver.HealthChecker
	close         func()
}

// Close releases the backend's connections.
func (b *Backend) Close() {
	if b.close != nil {
		b.close()
	}
}

// NewBackend creates the storage.Lister and its health checker based on the storage type
func NewBackend(ctx context.Context, cfg StorageConfig) (*Backend, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		lister, err := pg.NewLister(pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		return &Backend{
			Lister:        lister,
			HealthChecker: pg.NewHealthChecker(pool),
			close:         pool.Close,
		}, nil

	case storage.ES:
		lister, err := es.NewLister(*cfg.Es)
		if err != nil {
			return nil, err
		}
		hc, err := es.NewHealthChecker(*cfg.Es)
		if err != nil {
			return nil, err
		}
		return &Backend{Lister: lister, HealthChecker: hc}, nil

	case storage.InMem:
		s, err := in_mem.NewSeededStorer(ctx, cfg.SeedPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create in-memory storage: %w", err)
		}
		return &Backend{Lister: s, HealthChecker: pkgserver.NewOkHealthChecker()}, nil

	default:
		return nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorage, cfg.Type)
	}
}

// NewStorer creates a new storage.Storer based on the storage type.
// The returned func releases its connections.
func NewStorer(ctx context.Context, cfg StorageConfig) (storage.Storer, func(), error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		s, err := pg.NewStorer(pool)
		if err != nil {
			pool.Close()
			return nil, nil, err
		}
		return s, pool.Close, nil

	case storage.ES:
		s, err := es.NewStorer(ctx, *cfg.Es)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil

	case storage.InMem:
		return in_mem.NewInMemStorer(), func() {}, nil

	default:
		return nil, nil, fmt.Errorf("%w: %s", storage.ErrUnsupportedStorage, cfg.Type)
	}
}
