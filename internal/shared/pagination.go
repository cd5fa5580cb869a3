package shared

import "math"

// DefaultPerPage is used when a listing does not specify a page size.
const DefaultPerPage = 10

// Pagination contains metadata for paginated listings.
type Pagination struct {
	Page       int `json:"page"`
	PerPage    int `json:"perPage"`
	Total      int `json:"total"`
	TotalPages int `json:"totalPages"`
}

// NewPagination computes pagination metadata.
func NewPagination(page, perPage, total int) Pagination {
	if perPage <= 0 {
		perPage = DefaultPerPage
	}
	if page <= 0 {
		page = 1
	}
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	return Pagination{Page: page, PerPage: perPage, Total: total, TotalPages: totalPages}
}

// Offset returns the index of the first item on the current page, capped at Total
// so huge page numbers cannot overflow.
func (p Pagination) Offset() int {
	if p.Page <= 1 || p.PerPage <= 0 {
		return 0
	}
	if p.Page-1 > p.Total/p.PerPage {
		return p.Total
	}
	return min((p.Page-1)*p.PerPage, p.Total)
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a following page exists.
func (p Pagination) HasNext() bool { return p.Page < p.TotalPages }

// Window returns the [start, end) slice bounds of the current page for total items.
func (p Pagination) Window() (int, int) {
	total := max(p.Total, 0)
	start := min(max(p.Offset(), 0), total)
	end := total
	if p.PerPage > 0 && p.PerPage < total-start {
		end = start + p.PerPage
	}
	return start, end
}
