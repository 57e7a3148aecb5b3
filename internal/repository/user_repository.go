package repository

import (
	"context"

	"orgbox/internal/domain/entity"
)

type UserRepository interface {
	// Get returns the user with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.User, error)
	// GetByEmail returns the user with the given email, or (nil, nil) if absent.
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	// Delete removes the user and, through the cascade invariant, all
	// alarms, boxes, bookmarks and feed items the user owns.
	// Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
