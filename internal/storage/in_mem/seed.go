package in_mem

import (
	"context"
	"fmt"
	"os"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Pages []domain.Page `yaml:"pages"`
}

// LoadSeed reads a YAML file of the form "pages: [...]".
func LoadSeed(path string) ([]domain.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]domain.Page, error) {
	var f seedFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed YAML: %w", err)
	}

	for i, p := range f.Pages {
		if p.Slug == "" {
			return nil, fmt.Errorf("page at index %d has no slug", i)
		}
		if p.Title == "" {
			return nil, fmt.Errorf("page %q has no title", p.Slug)
		}
	}

	return f.Pages, nil
}

// NewSeededStorer returns an in-memory store holding the pages of the seed file.
func NewSeededStorer(ctx context.Context, path string) (*InMemStorer, error) {
	s := NewInMemStorer()
	if path == "" {
		return s, nil
	}

	pages, err := LoadSeed(path)
	if err != nil {
		return nil, err
	}
	if err := s.SaveBulk(ctx, pages); err != nil {
		return nil, fmt.Errorf("seed in-memory storage: %w", err)
	}
	return s, nil
}
