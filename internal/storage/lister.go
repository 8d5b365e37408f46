package storage

import (
	"context"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
)

// ListQuery selects one window of pages, newest first.
// An empty Locale lists pages of every language.
type ListQuery struct {
	Locale string
	Offset int
	Limit  int
}

// ListResult holds the requested window and the size of the whole set.
type ListResult struct {
	Items []domain.Page `json:"items"`
	Total int64         `json:"total"`
}

type Lister interface {
	// List returns pages ordered by published_at DESC, id DESC
	List(ctx context.Context, q ListQuery) (*ListResult, error)
	// Count returns the number of pages in locale, or of all pages when locale is empty
	Count(ctx context.Context, locale string) (int64, error)
}
