package pagination

// RangeRequest describes the pagination window a caller wants to render.
// Any integer is accepted for every field; out-of-range values are normalized.
type RangeRequest struct {
	TotalPages   int
	CurrentPage  int
	SiblingCount int
}

const maxPreallocMarkers = 256

// RangeResult is the normalized window produced by ComputeRange.
type RangeResult struct {
	TotalPages   int      `json:"total_pages"`
	CurrentPage  int      `json:"current_page"`
	SiblingCount int      `json:"sibling_count"`
	Applicable   bool     `json:"applicable"`
	Range        []Marker `json:"range"`
}

// ComputeRange returns the ordered page markers for req.
//
// The current page is clamped to [1, TotalPages] and the sibling count is raised
// to at least 1. The first and last pages are always part of the range; an Ellipsis
// is inserted only where it hides at least one page. Pagination is applicable only
// when there is more than one page, but the range is filled in regardless.
func ComputeRange(req RangeRequest) RangeResult {
	totalPages := max(req.TotalPages, 0)
	current := clamp(req.CurrentPage, 1, max(totalPages, 1))
	siblings := max(req.SiblingCount, 1)

	// current >= 1 and siblings >= 1, so neither bound can overflow.
	start := max(1, current-siblings)
	end := totalPages
	if siblings < totalPages-current {
		end = current + siblings
	}

	markers := make([]Marker, 0, min(max(end-start, 0), maxPreallocMarkers)+5)

	if start > 1 {
		markers = append(markers, PageMarker(1))
		if start > 2 {
			markers = append(markers, Ellipsis)
		}
	}

	// end may be math.MaxInt; stop on equality instead of p <= end.
	if start <= end {
		for p := start; ; p++ {
			markers = append(markers, PageMarker(p))
			if p == end {
				break
			}
		}
	}

	if end < totalPages {
		if end < totalPages-1 {
			markers = append(markers, Ellipsis)
		}
		markers = append(markers, PageMarker(totalPages))
	}

	return RangeResult{
		TotalPages:   totalPages,
		CurrentPage:  current,
		SiblingCount: siblings,
		Applicable:   totalPages > 1,
		Range:        markers,
	}
}

// HasPrevious reports whether there is a page before the current one.
func (r RangeResult) HasPrevious() bool {
	return r.CurrentPage > 1
}

// HasNext reports whether there is a page after the current one.
func (r RangeResult) HasNext() bool {
	return r.CurrentPage < r.TotalPages
}

// Pages returns only the numeric markers of the range.
func (r RangeResult) Pages() []int {
	pages := make([]int, 0, len(r.Range))
	for _, m := range r.Range {
		if !m.IsEllipsis() {
			pages = append(pages, m.Page())
		}
	}
	return pages
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
