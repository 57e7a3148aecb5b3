package alarm

import (
	"context"
	"fmt"
	"time"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

// CreateInput represents the input parameters for creating a new alarm.
type CreateInput struct {
	UserID    int64
	AlarmName string
	Time      time.Time
}

// UpdateInput represents the input parameters for updating an existing alarm.
// Nil fields are left untouched; ID and UserID are immutable.
type UpdateInput struct {
	ID        int64
	AlarmName *string
	Time      *time.Time
}

// Service provides alarm management use cases.
type Service struct {
	Repo repository.AlarmRepository
}

// Create creates a new alarm for the given user.
// All field constraints are checked before any store access.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.UserID <= 0 {
		return &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}
	if err := entity.ValidateName("alarmName", in.AlarmName); err != nil {
		return err
	}
	if in.Time.IsZero() {
		return &entity.ValidationError{Field: "time", Message: "is required"}
	}

	alarm := &entity.Alarm{
		UserID:    in.UserID,
		AlarmName: in.AlarmName,
		Time:      in.Time,
	}

	if err := s.Repo.Create(ctx, alarm); err != nil {
		return fmt.Errorf("create alarm: %w", err)
	}
	return nil
}

// ListByUser retrieves the user's alarms in insertion order.
// A user with no alarms yields an empty slice, not an error.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*entity.Alarm, error) {
	if userID <= 0 {
		return nil, &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}

	alarms, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list alarms: %w", err)
	}
	return alarms, nil
}

// Update modifies an existing alarm with the provided input.
// Only non-nil fields are applied; everything else is left untouched.
// Returns ErrAlarmNotFound if the alarm does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	alarm, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get alarm: %w", err)
	}
	if alarm == nil {
		return ErrAlarmNotFound
	}

	if in.AlarmName != nil {
		if err := entity.ValidateName("alarmName", *in.AlarmName); err != nil {
			return err
		}
		alarm.AlarmName = *in.AlarmName
	}
	if in.Time != nil {
		if in.Time.IsZero() {
			return &entity.ValidationError{Field: "time", Message: "is required"}
		}
		alarm.Time = *in.Time
	}

	if err := s.Repo.Update(ctx, alarm); err != nil {
		return fmt.Errorf("update alarm: %w", err)
	}
	return nil
}

// Delete removes an alarm by its ID. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete alarm: %w", err)
	}
	return nil
}
