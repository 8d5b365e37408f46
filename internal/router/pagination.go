package router

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/site-pager/internal/apperr"
	"github.com/DjordjeVuckovic/site-pager/internal/domain"
	"github.com/DjordjeVuckovic/site-pager/internal/locale"
	"github.com/DjordjeVuckovic/site-pager/internal/metrics"
	"github.com/DjordjeVuckovic/site-pager/internal/pager"
	"github.com/DjordjeVuckovic/site-pager/internal/storage"
	"github.com/DjordjeVuckovic/site-pager/pkg/pagination"
	"github.com/labstack/echo/v4"
)

type PaginationRouter struct {
	e           *echo.Echo
	catalog     *locale.Catalog
	metrics     *metrics.Metrics
	lister      storage.Lister
	storageType storage.Type
}

type PaginationRouterOption func(*PaginationRouter)

// WithLister enables the page listing endpoint backed by lister.
func WithLister(lister storage.Lister, storageType storage.Type) PaginationRouterOption {
	return func(r *PaginationRouter) {
		r.lister = lister
		r.storageType = storageType
	}
}

func NewPaginationRouter(e *echo.Echo, catalog *locale.Catalog, m *metrics.Metrics, opts ...PaginationRouterOption) *PaginationRouter {
	r := &PaginationRouter{
		e:       e,
		catalog: catalog,
		metrics: m,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *PaginationRouter) Bind() {
	v1 := r.e.Group("/v1")
	v1.GET("/pagination", r.paginationHandler)
	if r.lister != nil {
		v1.GET("/pages", r.pagesHandler)
	}
}

// PageListResponse is one window of pages plus the controls to move between windows.
type PageListResponse struct {
	*pagination.OffsetResult[domain.Page]
	Pagination pager.Controls `json:"pagination"`
}

// paginationHandler godoc
// @Summary Compute pagination controls
// @Description Computes the page markers and navigation controls for a page count
// @Tags pagination
// @Produce json
// @Param total query int true "Total number of pages"
// @Param page query int false "Current page (clamped to [1, total])"
// @Param siblings query int false "Pages shown on each side of the current page (min 1, max 10)"
// @Success 200 {object} pager.Controls
// @Failure 400 {object} apperr.errorResponse
// @Router /v1/pagination [get]
func (r *PaginationRouter) paginationHandler(c echo.Context) error {
	total, err := requiredQueryInt(c, "total")
	if err != nil {
		return err
	}
	page, err := queryInt(c, "page", 1)
	if err != nil {
		return err
	}
	siblings, err := queryInt(c, "siblings", pagination.DefaultSiblingCount)
	if err != nil {
		return err
	}

	res := r.computeRange(total, page, siblings)
	msgs := r.catalog.Lookup(locale.FromContext(c.Request().Context()))

	return c.JSON(http.StatusOK, pager.NewControls(res, msgs))
}

// pagesHandler godoc
// @Summary List pages
// @Description Lists CMS pages of the request locale, newest first, with pagination controls
// @Tags pages
// @Produce json
// @Param page query int false "Page number (1-based, clamped to the last page)"
// @Param size query int false "Page size (default 20, max 100)"
// @Param siblings query int false "Pages shown on each side of the current page (min 1, max 10)"
// @Param lang query string false "Language override (en, de, sr)"
// @Success 200 {object} PageListResponse
// @Failure 400 {object} apperr.errorResponse
// @Failure 500 {object} apperr.errorResponse
// @Router /v1/pages [get]
func (r *PaginationRouter) pagesHandler(c echo.Context) error {
	var req pagination.OffsetRequest
	var err error

	if req.Page, err = queryInt(c, "page", 1); err != nil {
		return err
	}
	if req.Size, err = queryInt(c, "size", pagination.PageDefaultSize); err != nil {
		return err
	}
	siblings, err := queryInt(c, "siblings", pagination.DefaultSiblingCount)
	if err != nil {
		return err
	}
	if err := req.Validate(); err != nil {
		return apperr.NewValidationWrap("invalid pagination parameters", err)
	}

	ctx := c.Request().Context()
	lang := locale.FromContext(ctx)

	total, err := r.lister.Count(ctx, lang)
	if err != nil {
		return fmt.Errorf("count pages: %w", err)
	}

	// A page past the end is served as the last page.
	if totalPages := pagination.TotalPages(total, req.Size); totalPages > 0 && req.Page > totalPages {
		slog.Debug("Requested page out of range, serving last page", "page", req.Page, "total_pages", totalPages)
		req.Page = totalPages
	}

	listed, err := r.lister.List(ctx, storage.ListQuery{Locale: lang, Offset: req.Offset(), Limit: req.Size})
	if err != nil {
		return fmt.Errorf("list pages: %w", err)
	}
	r.metrics.ObserveListing(string(r.storageType))

	res := r.computeRange(pagination.TotalPages(total, req.Size), req.Page, siblings)

	return c.JSON(http.StatusOK, PageListResponse{
		OffsetResult: pagination.NewOffsetResult(listed.Items, total, res.CurrentPage, req.Size),
		Pagination:   pager.NewControls(res, r.catalog.Lookup(lang)),
	})
}

// computeRange caps the sibling count so a request cannot ask for an unbounded window.
func (r *PaginationRouter) computeRange(total, page, siblings int) pagination.RangeResult {
	res := pagination.ComputeRange(pagination.RangeRequest{
		TotalPages:   total,
		CurrentPage:  page,
		SiblingCount: min(siblings, pagination.MaxSiblingCount),
	})
	r.metrics.ObserveRange(res.Applicable)
	return res
}
