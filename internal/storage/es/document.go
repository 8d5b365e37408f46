package es

import (
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/google/uuid"
)

// PageDocument is the stored shape of a page in the index.
type PageDocument struct {
	ID          string    `json:"id"`
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Locale      string    `json:"locale"`
	PublishedAt time.Time `json:"published_at"`
}

func toDocument(p domain.Page) PageDocument {
	return PageDocument{
		ID:          p.ID.String(),
		Slug:        p.Slug,
		Title:       p.Title,
		Summary:     p.Summary,
		Locale:      p.Locale,
		PublishedAt: p.PublishedAt,
	}
}

func (d PageDocument) toDomain() (domain.Page, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Page{}, fmt.Errorf("invalid page id %q: %w", d.ID, err)
	}
	return domain.Page{
		ID:          id,
		Slug:        d.Slug,
		Title:       d.Title,
		Summary:     d.Summary,
		Locale:      d.Locale,
		PublishedAt: d.PublishedAt,
	}, nil
}

func pageMapping() types.TypeMapping {
	title := types.NewTextProperty()
	title.Fields = map[string]types.Property{
		"keyword": types.NewKeywordProperty(),
	}

	return types.TypeMapping{
		Properties: map[string]types.Property{
			"id":           types.NewKeywordProperty(),
			"slug":         types.NewKeywordProperty(),
			"title":        title,
			"summary":      types.NewTextProperty(),
			"locale":       types.NewKeywordProperty(),
			"published_at": types.NewDateProperty(),
		},
	}
}
