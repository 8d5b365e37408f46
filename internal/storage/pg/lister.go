package pg

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Lister struct {
	db *pgxpool.Pool
}

func NewLister(pool *ConnectionPool) (*Lister, error) {
	return &Lister{db: pool.conn}, nil
}

func (l *Lister) List(ctx context.Context, q storage.ListQuery) (*storage.ListResult, error) {
	slog.Debug("Executing pg page listing", "locale", q.Locale, "offset", q.Offset, "limit", q.Limit)

	total, err := l.Count(ctx, q.Locale)
	if err != nil {
		return nil, err
	}

	limit := q.Limit
	if limit <= 0 {
		limit = int(total)
	}

	rows, err := l.db.Query(ctx, `
		SELECT id, slug, title, summary, locale, published_at
		FROM pages
		WHERE ($1 = '' OR locale = $1)
		ORDER BY published_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`, q.Locale, limit, max(q.Offset, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to execute listing query: %w", err)
	}
	defer rows.Close()

	pages := make([]domain.Page, 0, limit)
	for rows.Next() {
		var p domain.Page
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Summary, &p.Locale, &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("failed to scan page: %w", err)
		}
		pages = append(pages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return &storage.ListResult{
		Items: pages,
		Total: total,
	}, nil
}

func (l *Lister) Count(ctx context.Context, locale string) (int64, error) {
	var total int64
	err := l.db.QueryRow(ctx,
		`SELECT count(*) FROM pages WHERE ($1 = '' OR locale = $1)`,
		locale,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return total, nil
}
