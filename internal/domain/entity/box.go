package entity

import "time"

// Box represents a named container for bookmarks, owned by a user.
type Box struct {
	ID        int64
	UserID    int64
	BoxName   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
