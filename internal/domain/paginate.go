package domain

// DefaultPageSize is the number of recipes shown per page.
const DefaultPageSize = 6

// Page is a fixed-size, 1-indexed slice of a ranked sequence.
type Page[T any] struct {
	Items      []T
	Number     int
	Size       int
	TotalPages int
	TotalItems int
}

// Paginate returns page number of seq split into pages of size items.
//
// TotalPages is at least 1, so an empty sequence has one empty page.
// The page number is not clamped: pages past the end are empty.
// Sizes and page numbers below 1 are treated as 1.
func Paginate[T any](seq []T, size, number int) Page[T] {
	size = max(size, 1)
	number = max(number, 1)

	total := len(seq)
	page := Page[T]{
		Items:      []T{},
		Number:     number,
		Size:       size,
		TotalPages: max(1, (total+size-1)/size),
		TotalItems: total,
	}

	if number > page.TotalPages {
		return page
	}

	start := (number - 1) * size
	if start >= total {
		return page
	}

	end := min(start+size, total)
	page.Items = seq[start:end:end]

	return page
}

// HasPrevious reports whether a page precedes this one.
func (p Page[T]) HasPrevious() bool {
	return p.Number > 1
}

// HasNext reports whether a page follows this one.
func (p Page[T]) HasNext() bool {
	return p.Number < p.TotalPages
}
