package service

// DefaultPageSize and MaxPageSize bound list pagination.
const (
	DefaultPageSize = 12
	MaxPageSize     = 100
)

// PageInfo describes one page of an in-memory list.
type PageInfo struct {
	Page     int
	PageSize int
	Total    int
	// Start and End are the zero-based half-open bounds of the page in the list.
	Start int
	End   int
}

// HasPrev reports whether an earlier page exists.
func (p PageInfo) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a later page exists.
func (p PageInfo) HasNext() bool { return p.End < p.Total }

// Paginate clamps page and size and returns the requested slice of items.
// A page past the end yields the last page.
func Paginate[T any](items []T, page, size int) ([]T, PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	total := len(items)
	last := 1
	if total > 0 {
		last = (total + size - 1) / size
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}
	start := (page - 1) * size
	end := min(start+size, total)
	return items[start:end], PageInfo{Page: page, PageSize: size, Total: total, Start: start, End: end}
}
