package repository

import (
	"context"

	"orgbox/internal/domain/entity"
)

type BookmarkRepository interface {
	// Get returns the bookmark with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Bookmark, error)
	// ListByBox returns the box's bookmarks in insertion order.
	// No bookmarks is an empty slice, not an error.
	ListByBox(ctx context.Context, boxID int64) ([]*entity.Bookmark, error)
	Create(ctx context.Context, bookmark *entity.Bookmark) error
	Update(ctx context.Context, bookmark *entity.Bookmark) error
	// Delete removes the bookmark. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
