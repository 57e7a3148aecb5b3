package entity

import "time"

// Bookmark represents a saved URL inside a box.
// BoxID ties the bookmark to its owning box; it never changes after creation.
type Bookmark struct {
	ID           int64
	BoxID        int64
	BookmarkName string
	URL          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
