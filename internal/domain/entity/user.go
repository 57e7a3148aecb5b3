// Package entity defines the core domain entities and validation logic for
// the application. It contains the fundamental business objects such as User,
// Box, Bookmark, Alarm and Feed, along with their validation rules and
// domain-specific errors.
package entity

import "time"

// User represents an account that owns alarms, boxes and feed items.
// PasswordHash is an opaque credential digest; hashing happens upstream.
type User struct {
	ID           int64
	Email        string
	Nickname     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
