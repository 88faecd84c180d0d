// Package paging provides one-based page/limit handling for list endpoints.
package paging

import "strconv"

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Params are the sanitized paging inputs of a list request.
type Params struct {
	Page     int
	PageSize int
}

// FromQuery parses page and page_size query values, falling back to defaults
// on anything missing or malformed.
func FromQuery(pageStr, sizeStr string) Params {
	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}
	size, err := strconv.Atoi(sizeStr)
	if err != nil || size <= 0 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return Params{Page: page, PageSize: size}
}

// LimitOffset converts the params to SQL limit/offset.
func (p Params) LimitOffset() (limit, offset int) {
	return p.PageSize, (p.Page - 1) * p.PageSize
}

// Response is one page of items with listing metadata.
type Response[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
	HasNext  bool  `json:"has_next"`
	HasPrev  bool  `json:"has_prev"`
}

// NewResponse wraps a page of items with its metadata.
func NewResponse[T any](items []T, total int64, p Params) Response[T] {
	if items == nil {
		items = []T{}
	}
	return Response[T]{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
		HasNext:  int64(p.Page*p.PageSize) < total,
		HasPrev:  p.Page > 1,
	}
}
