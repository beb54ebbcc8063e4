package domain

import "math"

const (
	// DefaultPage first page
	DefaultPage = 1
	// DefaultLimit page size when not given
	DefaultLimit = 10
	// MaxLimit page size upper bound
	MaxLimit = 100
	// MaxPage page upper bound, keeps (page-1)*limit inside int64
	MaxPage = math.MaxInt32
)

// Page 分頁結果
type Page[T any] struct {
	Items       []T   `json:"docs"`
	TotalDocs   int64 `json:"totalDocs"`
	TotalPages  int64 `json:"totalPages"`
	Page        int   `json:"page"`
	Limit       int   `json:"limit"`
	HasNextPage bool  `json:"hasNextPage"`
	HasPrevPage bool  `json:"hasPrevPage"`
}

// NewPage build page metadata, totalPages = ceil(total/limit)
func NewPage[T any](items []T, total int64, page, limit int) *Page[T] {
	if items == nil {
		items = []T{}
	}
	var totalPages int64
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return &Page[T]{
		Items:       items,
		TotalDocs:   total,
		TotalPages:  totalPages,
		Page:        page,
		Limit:       limit,
		HasNextPage: int64(page) < totalPages,
		HasPrevPage: page > 1,
	}
}

// NormalizePage apply defaults and bounds to page/limit
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if page > MaxPage {
		page = MaxPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// Skip documents before page
func Skip(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}
