package entity

// PageRequest is a 1-based page selector.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.PageSize
}

// Page is one page of a listing.
type Page[T any] struct {
	Items    []T
	Total    int64
	Page     int
	PageSize int
}

// HasNext reports whether another page follows.
func (p Page[T]) HasNext() bool {
	return int64(p.Page*p.PageSize) < p.Total
}

// ListFilter narrows business and offer listings.
type ListFilter struct {
	Search       string
	BusinessType string
	Municipality string
}
