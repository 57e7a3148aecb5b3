package entity

import "time"

// Feed represents one item in a user's personal feed.
// Items are listed newest first and searched by substring on Content.
type Feed struct {
	ID        int64
	UserID    int64
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
