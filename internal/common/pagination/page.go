package pagination

// Page is a generic single page of results with its continuation state.
// T is the type of data items (e.g. *entity.Feed).
//
// NextToken is empty and HasMore false on the final page; a request past the
// end of the result set yields an empty Items slice, not an error.
type Page[T any] struct {
	Items     []T
	NextToken string
	HasMore   bool
}

// NewPage creates a page from its items and continuation state.
func NewPage[T any](items []T, nextToken string, hasMore bool) Page[T] {
	return Page[T]{
		Items:     items,
		NextToken: nextToken,
		HasMore:   hasMore,
	}
}
