package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) (*Storer, error) {
	return &Storer{db: pool.conn}, nil
}

func (s *Storer) SaveBulk(ctx context.Context, pages []domain.Page) error {
	if len(pages) == 0 {
		return nil
	}

	rows := make([][]interface{}, len(pages))
	now := time.Now()

	for i, p := range pages {
		p.Normalize(now)
		rows[i] = []interface{}{
			p.ID,
			p.Slug,
			p.Title,
			p.Summary,
			p.Locale,
			p.PublishedAt,
		}
	}

	_, err := s.db.CopyFrom(
		ctx,
		pgx.Identifier{"pages"},
		[]string{"id", "slug", "title", "summary", "locale", "published_at"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("failed to bulk insert pages: %w", err)
	}
	return nil
}
