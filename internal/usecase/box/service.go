package box

import (
	"context"
	"fmt"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

// CreateInput represents the input parameters for creating a new box.
type CreateInput struct {
	UserID  int64
	BoxName string
}

// UpdateInput represents the input parameters for updating an existing box.
// Nil fields are left untouched; ID and UserID are immutable.
type UpdateInput struct {
	ID      int64
	BoxName *string
}

// Service provides box management use cases.
type Service struct {
	Repo repository.BoxRepository
}

// Create creates a new box for the given user.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.UserID <= 0 {
		return &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}
	if err := entity.ValidateName("boxName", in.BoxName); err != nil {
		return err
	}

	box := &entity.Box{
		UserID:  in.UserID,
		BoxName: in.BoxName,
	}

	if err := s.Repo.Create(ctx, box); err != nil {
		return fmt.Errorf("create box: %w", err)
	}
	return nil
}

// ListByUser retrieves the user's boxes in insertion order.
// A user with no boxes yields an empty slice, not an error.
func (s *Service) ListByUser(ctx context.Context, userID int64) ([]*entity.Box, error) {
	if userID <= 0 {
		return nil, &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}

	boxes, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list boxes: %w", err)
	}
	return boxes, nil
}

// Update modifies an existing box with the provided input.
// Returns ErrBoxNotFound if the box does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	box, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get box: %w", err)
	}
	if box == nil {
		return ErrBoxNotFound
	}

	if in.BoxName != nil {
		if err := entity.ValidateName("boxName", *in.BoxName); err != nil {
			return err
		}
		box.BoxName = *in.BoxName
	}

	if err := s.Repo.Update(ctx, box); err != nil {
		return fmt.Errorf("update box: %w", err)
	}
	return nil
}

// Delete removes a box by its ID, cascading to its bookmarks.
// Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete box: %w", err)
	}
	return nil
}
