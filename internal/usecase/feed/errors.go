// Package feed provides use cases for the user feed: creating items,
// deleting them, and serving paginated, searchable pages.
package feed

import "errors"

// Sentinel errors for feed use case operations.
var (
	// ErrFeedNotFound indicates that the requested feed item was not found.
	ErrFeedNotFound = errors.New("feed item not found")
)
