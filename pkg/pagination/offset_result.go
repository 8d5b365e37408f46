package pagination

// OffsetResult represents traditional offset-based pagination
type OffsetResult[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalPages int   `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// NewOffsetResult creates a new offset-based result
func NewOffsetResult[T any](items []T, total int64, page int, size int) *OffsetResult[T] {
	offset := (page - 1) * size
	hasMore := int64(offset+size) < total

	if items == nil {
		items = make([]T, 0)
	}

	return &OffsetResult[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Size:       size,
		TotalPages: TotalPages(total, size),
		HasMore:    hasMore,
	}
}

// TotalPages returns how many pages of the given size are needed to hold totalItems.
// An empty set or a non-positive size has no pages.
func TotalPages(totalItems int64, size int) int {
	if totalItems <= 0 || size <= 0 {
		return 0
	}
	return int((totalItems + int64(size) - 1) / int64(size))
}
