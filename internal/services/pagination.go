package services

// Page is the envelope every paginated listing returns. Total counts all
// matches ignoring pagination; TotalPages is never below 1 so clients can
// always render a page-1-of-1 state.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

type Pagination struct {
	DefaultPageSize int
	MaxPageSize     int
}

// ClampPageSize resolves a requested page size: zero means unset (use the
// default), anything above the maximum is silently clamped. Negative input
// never reaches this point; handlers reject it first.
func (p Pagination) ClampPageSize(requested int) int {
	size := requested
	if size <= 0 {
		size = p.DefaultPageSize
	}
	if size > p.MaxPageSize {
		size = p.MaxPageSize
	}
	return size
}

func totalPages(total int64, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if pages < 1 {
		pages = 1
	}
	return pages
}

func pageOffset(page, pageSize int) int {
	return (page - 1) * pageSize
}

func newPage[T any](items []T, total int64, page, pageSize int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	return &Page[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages(total, pageSize),
	}
}
