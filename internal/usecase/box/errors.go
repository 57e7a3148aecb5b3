// Package box provides use cases for managing bookmark boxes.
// Deleting a box removes its bookmarks through the store's cascade invariant.
package box

import "errors"

// Sentinel errors for box use case operations.
var (
	// ErrBoxNotFound indicates that the requested box was not found.
	ErrBoxNotFound = errors.New("box not found")
)
