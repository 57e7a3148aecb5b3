// Package bookmark provides use cases for managing bookmarks inside boxes.
// It implements business logic for creating, listing, updating and deleting
// bookmarks, including validation and interaction with the bookmark repository.
package bookmark

import "errors"

// Sentinel errors for bookmark use case operations.
var (
	// ErrBookmarkNotFound indicates that the requested bookmark was not found.
	// This error is typically returned when attempting to update a bookmark
	// that does not exist in the repository.
	ErrBookmarkNotFound = errors.New("bookmark not found")
)
