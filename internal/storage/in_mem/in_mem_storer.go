package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/google/uuid"
)

type InMemStorer struct {
	storageLock sync.RWMutex
	storage     map[uuid.UUID]domain.Page
}

func NewInMemStorer() *InMemStorer {
	return &InMemStorer{
		storage: make(map[uuid.UUID]domain.Page),
	}
}

func (s *InMemStorer) SaveBulk(ctx context.Context, pages []domain.Page) error {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	now := time.Now()
	for _, page := range pages {
		page.Normalize(now)
		s.storage[page.ID] = page
		slog.Debug("Saving page to in-memory storage", "slug", page.Slug, "id", page.ID)
	}

	return nil
}

func (s *InMemStorer) Count(_ context.Context, locale string) (int64, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	if locale == "" {
		return int64(len(s.storage)), nil
	}
	var n int64
	for _, page := range s.storage {
		if page.Locale == locale {
			n++
		}
	}
	return n, nil
}

func (s *InMemStorer) List(ctx context.Context, q storage.ListQuery) (*storage.ListResult, error) {
	s.storageLock.RLock()
	matched := make([]domain.Page, 0, len(s.storage))
	for _, page := range s.storage {
		if q.Locale == "" || page.Locale == q.Locale {
			matched = append(matched, page)
		}
	}
	s.storageLock.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].PublishedAt.Equal(matched[j].PublishedAt) {
			return matched[i].PublishedAt.After(matched[j].PublishedAt)
		}
		return matched[i].ID.String() > matched[j].ID.String()
	})

	total := int64(len(matched))

	from := min(max(q.Offset, 0), len(matched))
	to := len(matched)
	if q.Limit > 0 {
		to = min(from+q.Limit, len(matched))
	}

	return &storage.ListResult{
		Items: matched[from:to],
		Total: total,
	}, nil
}
