package repository

import (
	"context"

	"orgbox/internal/domain/entity"
)

type AlarmRepository interface {
	// Get returns the alarm with the given id, or (nil, nil) if absent.
	Get(ctx context.Context, id int64) (*entity.Alarm, error)
	// ListByUser returns the user's alarms in insertion order.
	// No alarms is an empty slice, not an error.
	ListByUser(ctx context.Context, userID int64) ([]*entity.Alarm, error)
	Create(ctx context.Context, alarm *entity.Alarm) error
	Update(ctx context.Context, alarm *entity.Alarm) error
	// Delete removes the alarm. Deleting a missing id is a no-op.
	Delete(ctx context.Context, id int64) error
}
