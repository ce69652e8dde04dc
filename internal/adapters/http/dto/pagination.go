package dto

import "github.com/jsamuelsen/recipe-service/internal/domain"

// PaginationRequest represents page-number pagination parameters from the request.
// Zero values mean "not provided" and are replaced by defaults.
type PaginationRequest struct {
	// Page is 1-indexed.
	Page int `form:"page" validate:"omitempty,gte=1"`

	// PageSize is capped by the handler's configured maximum.
	PageSize int `form:"page_size" validate:"omitempty,gte=1"`
}

// GetPage returns the page number with the default applied.
func (p *PaginationRequest) GetPage() int {
	if p.Page <= 0 {
		return 1
	}

	return p.Page
}

// GetPageSize returns the page size, or def when none was requested.
func (p *PaginationRequest) GetPageSize(def int) int {
	if p.PageSize <= 0 {
		return def
	}

	return p.PageSize
}

// PaginatedResponse is a generic page of items.
type PaginatedResponse[T any] struct {
	// Items is never null; an empty page encodes as [].
	Items []T `json:"items"`

	Page        int  `json:"page"`
	PageSize    int  `json:"pageSize"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems"`
	HasNext     bool `json:"hasNext"`
	HasPrevious bool `json:"hasPrevious"`
}

// NewPaginatedResponse converts a domain page, mapping each item with convert.
func NewPaginatedResponse[S, T any](p domain.Page[S], convert func(S) T) *PaginatedResponse[T] {
	items := make([]T, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, convert(it))
	}

	return &PaginatedResponse[T]{
		Items:       items,
		Page:        p.Number,
		PageSize:    p.Size,
		TotalPages:  p.TotalPages,
		TotalItems:  p.TotalItems,
		HasNext:     p.HasNext(),
		HasPrevious: p.HasPrevious(),
	}
}
