package dto

import "strings"

// Page carries the shared list-query knobs: sort direction over creation time
// and 1-based pagination.
type Page struct {
	OrderBy     string `query:"orderBy" json:"orderBy"`
	CurrentPage int    `query:"currentPage" json:"currentPage"`
	PageSize    int    `query:"pageSize" json:"pageSize"`
}

// Normalize applies the default page window for missing or invalid values.
func (p *Page) Normalize() {
	if p.CurrentPage < 1 {
		p.CurrentPage = 1
	}
	if p.PageSize < 1 {
		p.PageSize = 10
	}
}

// SortClause resolves the creation-time ordering for the requested direction.
// Only "desc", in any case, sorts descending; everything else is ascending.
func (p Page) SortClause() string {
	if strings.EqualFold(p.OrderBy, "desc") {
		return "created_at DESC"
	}
	return "created_at ASC"
}

// Paginated is the envelope returned by list endpoints.
type Paginated[T any] struct {
	CurrentPage  int `json:"currentPage"`
	TotalPages   int `json:"totalPages"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
	Data         []T `json:"data"`
}

// NewPaginated assembles a page envelope from the requested window and the
// total matching record count.
func NewPaginated[T any](page Page, totalRecords int, items []T) Paginated[T] {
	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (totalRecords + page.PageSize - 1) / page.PageSize
	}
	if items == nil {
		items = []T{}
	}
	return Paginated[T]{
		CurrentPage:  page.CurrentPage,
		TotalPages:   totalPages,
		PageSize:     page.PageSize,
		TotalRecords: totalRecords,
		Data:         items,
	}
}
