package router

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DjordjeVuckovic/site-pager/internal/apperr"
	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/DjordjeVuckovic/site-pager/internal/metrics"
	"github.com/DjordjeVuckovic/site-pager/internal/middleware"
	"github.com/DjordjeVuckovic/site-pager/internal/pager"
	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/DjordjeVuckovic/site-pager/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/site-pager/pkg/pagination"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingLister struct{}

func (failingLister) List(context.Context, storage.ListQuery) (*storage.ListResult, error) {
	return nil, errors.New("connection refused")
}

func (failingLister) Count(context.Context, string) (int64, error) {
	return 0, errors.New("connection refused")
}

// windowedLister rejects windows past maxWindow the way Elasticsearch does and records every query.
type windowedLister struct {
	storage.Lister
	maxWindow int
	queries   []storage.ListQuery
}

func (l *windowedLister) List(ctx context.Context, q storage.ListQuery) (*storage.ListResult, error) {
	l.queries = append(l.queries, q)
	if q.Offset+q.Limit > l.maxWindow {
		return nil, fmt.Errorf("result window is too large: %d", q.Offset+q.Limit)
	}
	return l.Lister.List(ctx, q)
}

func newTestEcho(t *testing.T, lister storage.Lister) (*echo.Echo, *metrics.Metrics) {
	t.Helper()

	catalog, err := locale.DefaultCatalog()
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = apperr.GlobalErrorHandler()
	e.Use(middleware.Locale())

	m := metrics.New(prometheus.NewRegistry())
	var opts []PaginationRouterOption
	if lister != nil {
		opts = append(opts, WithLister(lister, storage.InMem))
	}
	NewPaginationRouter(e, catalog, m, opts...).Bind()
	return e, m
}

func newSeededLister(t *testing.T, n int, lang string) storage.Lister {
	t.Helper()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	pages := make([]domain.Page, n)
	for i := range pages {
		pages[i] = domain.Page{
			Slug:        fmt.Sprintf("page-%02d", i),
			Title:       fmt.Sprintf("Page %d", i),
			Locale:      lang,
			PublishedAt: base.Add(time.Duration(i) * time.Hour),
		}
	}

	s := in_mem.NewInMemStorer()
	require.NoError(t, s.SaveBulk(context.Background(), pages))
	return s
}

func get(e *echo.Echo, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPaginationHandler(t *testing.T) {
	e, m := newTestEcho(t, nil)

	rec := get(e, "/v1/pagination?total=10&page=5&siblings=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got pager.Controls
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.True(t, got.Applicable)
	assert.Equal(t, 5, got.CurrentPage)
	kinds := make([]string, 0, len(got.Items))
	for _, it := range got.Items {
		if it.Kind == pager.KindEllipsis {
			kinds = append(kinds, "...")
			continue
		}
		kinds = append(kinds, fmt.Sprint(it.Page))
	}
	assert.Equal(t, []string{"1", "...", "4", "5", "6", "...", "10"}, kinds)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RangesComputed.WithLabelValues("true")))
}

func TestPaginationHandler_Normalizes(t *testing.T) {
	e, m := newTestEcho(t, nil)

	rec := get(e, "/v1/pagination?total=10&page=12&siblings=-4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got pager.Controls
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 10, got.CurrentPage)
	assert.Equal(t, 1, got.SiblingCount)
	assert.True(t, got.Next.Disabled)
	assert.True(t, got.Last.Disabled)

	rec = get(e, "/v1/pagination?total=1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.False(t, got.Applicable)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RangesComputed.WithLabelValues("false")))
}

func TestPaginationHandler_CapsSiblings(t *testing.T) {
	e, _ := newTestEcho(t, nil)

	rec := get(e, "/v1/pagination?total=1000000000&page=500000000&siblings=1000000000", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got pager.Controls
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, pagination.MaxSiblingCount, got.SiblingCount)
	assert.Len(t, got.Items, 2*pagination.MaxSiblingCount+5)
	assert.Equal(t, 500000000, got.CurrentPage)
}

func TestPaginationHandler_MaxIntInputs(t *testing.T) {
	e, _ := newTestEcho(t, nil)

	rec := get(e, "/v1/pagination?total=9223372036854775807&page=9223372036854775806", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got pager.Controls
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, math.MaxInt-1, got.CurrentPage)
	require.Len(t, got.Items, 5)
	assert.Equal(t, math.MaxInt, got.Items[4].Page)
}

func TestPaginationHandler_Localized(t *testing.T) {
	e, _ := newTestEcho(t, nil)

	rec := get(e, "/v1/pagination?total=3&page=2", http.Header{"Accept-Language": {"de"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var got pager.Controls
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "Weiter", got.Next.Label)
	assert.Equal(t, "Seite 2", got.Items[1].Label)
}

func TestPaginationHandler_BadRequest(t *testing.T) {
	e, _ := newTestEcho(t, nil)

	tests := []struct {
		name      string
		target    string
		wantField string
	}{
		{name: "missing total", target: "/v1/pagination?page=2", wantField: "total"},
		{name: "non numeric total", target: "/v1/pagination?total=ten", wantField: "total"},
		{name: "non numeric page", target: "/v1/pagination?total=10&page=x", wantField: "page"},
		{name: "non numeric siblings", target: "/v1/pagination?total=10&siblings=1.5", wantField: "siblings"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(e, tt.target, nil)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantField, body["field"])
			assert.Equal(t, "validation error", body["title"])
		})
	}
}

func TestPagesHandler(t *testing.T) {
	e, m := newTestEcho(t, newSeededLister(t, 45, "en"))

	rec := get(e, "/v1/pages?page=2&size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got PageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.OffsetResult)

	assert.Equal(t, int64(45), got.Total)
	assert.Equal(t, 5, got.TotalPages)
	assert.Equal(t, 2, got.Page)
	assert.True(t, got.HasMore)
	require.Len(t, got.Items, 10)
	assert.Equal(t, "page-34", got.Items[0].Slug)

	assert.Equal(t, 2, got.Pagination.CurrentPage)
	assert.False(t, got.Pagination.Previous.Disabled)
	assert.Equal(t, 1, got.Pagination.Previous.Page)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PagesListed.WithLabelValues("in_mem")))
}

func TestPagesHandler_PageBeyondEnd(t *testing.T) {
	e, _ := newTestEcho(t, newSeededLister(t, 45, "en"))

	rec := get(e, "/v1/pages?page=99&size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got PageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Equal(t, 5, got.Page)
	assert.False(t, got.HasMore)
	require.Len(t, got.Items, 5)
	assert.Equal(t, "page-04", got.Items[0].Slug)
	assert.True(t, got.Pagination.Next.Disabled)
}

func TestPagesHandler_ClampsBeforeListing(t *testing.T) {
	lister := &windowedLister{Lister: newSeededLister(t, 45, "en"), maxWindow: 100}
	e, m := newTestEcho(t, lister)

	rec := get(e, "/v1/pages?page=1000&size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got PageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 5, got.Page)
	require.Len(t, got.Items, 5)

	require.Len(t, lister.queries, 1)
	assert.Equal(t, storage.ListQuery{Locale: "en", Offset: 40, Limit: 10}, lister.queries[0])
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PagesListed.WithLabelValues("in_mem")))
}

func TestPagesHandler_OtherLocaleIsEmpty(t *testing.T) {
	e, _ := newTestEcho(t, newSeededLister(t, 5, "en"))

	rec := get(e, "/v1/pages?lang=sr", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var got PageListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))

	assert.Zero(t, got.Total)
	assert.Empty(t, got.Items)
	assert.Equal(t, 1, got.Page)
	assert.False(t, got.Pagination.Applicable)
	assert.Empty(t, got.Pagination.Items)
	assert.Equal(t, "Sledeća", got.Pagination.Next.Label)
}

func TestPagesHandler_StorageFailure(t *testing.T) {
	e, _ := newTestEcho(t, failingLister{})

	rec := get(e, "/v1/pages", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPagesHandler_NotBoundWithoutLister(t *testing.T) {
	e, _ := newTestEcho(t, nil)

	rec := get(e, "/v1/pages", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
