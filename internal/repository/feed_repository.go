package repository

import (
	"context"
	"time"

	"orgbox/internal/domain/entity"
)

// FeedCursor marks a position in the (created_at DESC, id DESC) feed order.
// A nil cursor means "from the newest item".
type FeedCursor struct {
	CreatedAt time.Time
	ID        int64
}

type FeedRepository interface {
	// Get returns the feed item with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Feed, error)
	// ListPage returns up to limit feed items owned by userID, strictly
	// older than the cursor position, newest first. A non-empty searchTerm
	// filters by case-insensitive substring match on content.
	// No matches is an empty slice, not an error.
	ListPage(ctx context.Context, userID int64, searchTerm string, after *FeedCursor, limit int) ([]*entity.Feed, error)
	Create(ctx context.Context, feed *entity.Feed) error
	// Delete removes the feed item. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
