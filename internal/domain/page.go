package domain

import (
	"time"

	"github.com/google/uuid"
)

const PageDefaultLocale = "en"

// Page is a published CMS page as listed on the site.
type Page struct {
	ID          uuid.UUID `json:"id" yaml:"id"`
	Slug        string    `json:"slug" yaml:"slug"`
	Title       string    `json:"title" yaml:"title"`
	Summary     string    `json:"summary,omitempty" yaml:"summary"`
	Locale      string    `json:"locale" yaml:"locale"`
	PublishedAt time.Time `json:"publishedAt" yaml:"published_at"`
}

// Normalize fills the fields a store must never persist empty.
func (p *Page) Normalize(now time.Time) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Locale == "" {
		p.Locale = PageDefaultLocale
	}
	if p.PublishedAt.IsZero() {
		p.PublishedAt = now
	}
}
