package repository

import (
	"context"

	"orgbox/internal/domain/entity"
)

type BoxRepository interface {
	// Get returns the box with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Box, error)
	// ListByUser returns the user's boxes in insertion order.
	// No boxes is an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Box, error)
	Create(ctx context.Context, box *entity.Box) error
	Update(ctx context.Context, box *entity.Box) error
	// Delete removes the box and all its bookmarks atomically.
	// Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
