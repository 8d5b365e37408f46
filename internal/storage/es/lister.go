package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
)

// MaxResultWindow is the default index.max_result_window; from+size beyond it is rejected by Elasticsearch.
const MaxResultWindow = 10000

type Lister struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewLister(config ClientConfig) (*Lister, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Lister{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (l *Lister) List(ctx context.Context, q storage.ListQuery) (*storage.ListResult, error) {
	slog.Debug("Executing es page listing", "locale", q.Locale, "offset", q.Offset, "limit", q.Limit)

	if q.Offset+q.Limit > MaxResultWindow {
		return nil, fmt.Errorf("offset %d with limit %d is past the index result window of %d", q.Offset, q.Limit, MaxResultWindow)
	}

	sortOrderDesc := sortorder.Desc
	searchReq := l.client.Search().
		Index(l.indexName).
		Query(localeQuery(q.Locale)).
		From(max(q.Offset, 0)).
		Size(max(q.Limit, 0)).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"published_at": {Order: &sortOrderDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id": {Order: &sortOrderDesc},
				},
			},
		)

	res, err := searchReq.Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch listing failed", "error", err, "index", l.indexName)
		return nil, fmt.Errorf("failed to execute listing: %w", err)
	}

	pages, err := mapHits(res.Hits.Hits)
	if err != nil {
		return nil, err
	}

	var total int64
	if res.Hits.Total != nil {
		total = res.Hits.Total.Value
	}

	return &storage.ListResult{
		Items: pages,
		Total: total,
	}, nil
}

// Count uses the count API, which is exact where hits.total stops at the result window.
func (l *Lister) Count(ctx context.Context, locale string) (int64, error) {
	res, err := l.client.Count().
		Index(l.indexName).
		Query(localeQuery(locale)).
		Do(ctx)
	if err != nil {
		slog.Error("Elasticsearch count failed", "error", err, "index", l.indexName)
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return res.Count, nil
}

func localeQuery(locale string) *types.Query {
	if locale == "" {
		return &types.Query{MatchAll: &types.MatchAllQuery{}}
	}
	return &types.Query{
		Term: map[string]types.TermQuery{
			"locale": {Value: locale},
		},
	}
}

func mapHits(hits []types.Hit) ([]domain.Page, error) {
	pages := make([]domain.Page, 0, len(hits))
	for _, hit := range hits {
		var doc PageDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}
		p, err := doc.toDomain()
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}
