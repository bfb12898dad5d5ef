package dto

import "myevent-api/core/entity"

type Pagination[T any] struct {
	Items      []T  `json:"items"`
	TotalItems int  `json:"total_items"`
	PageNumber int  `json:"page_number"`
	PageSize   int  `json:"page_size"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// MapPagination converts an entity page into its response shape, mapping
// each item with fn.
func MapPagination[E, D any](page *entity.Pagination[E], fn func(E) D) *Pagination[D] {
	if page == nil {
		return nil
	}
	items := make([]D, 0, len(page.Items))
	for _, item := range page.Items {
		items = append(items, fn(item))
	}

	totalPages := 0
	if page.PageSize > 0 {
		totalPages = (page.TotalItems + page.PageSize - 1) / page.PageSize
	}

	return &Pagination[D]{
		Items:      items,
		TotalItems: page.TotalItems,
		PageNumber: page.PageNumber,
		PageSize:   page.PageSize,
		TotalPages: totalPages,
		HasNext:    page.PageNumber < totalPages,
		HasPrev:    page.PageNumber > 1,
	}
}
