// Package user provides use cases for managing user accounts.
// Deleting a user removes the alarms, boxes, bookmarks and feed items the
// user owns through the store's cascade invariant.
package user

import "errors"

// Sentinel errors for user use case operations.
var (
	// ErrUserNotFound indicates that the requested user was not found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates that a user with the same email already
	// exists. Emails are unique across the system.
	ErrDuplicateEmail = errors.New("user with this email already exists")
)
