package storage

import (
	"context"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
)

type Storer interface {
	SaveBulk(ctx context.Context, pages []domain.Page) error
}

type Type string

const (
	ES    Type = "es"
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorageError string

const (
	ErrUnsupportedStorage StorageError = "unsupported storage type"
)

func (e StorageError) Error() string {
	return string(e)
}
