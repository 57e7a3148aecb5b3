package bookmark

import (
	"context"
	"fmt"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

// CreateInput represents the input parameters for creating a new bookmark.
type CreateInput struct {
	BoxID        int64
	BookmarkName string
	URL          string
}

// UpdateInput represents the input parameters for updating an existing
// bookmark. Nil fields are left untouched; ID and BoxID are immutable.
type UpdateInput struct {
	ID           int64
	BookmarkName *string
	URL          *string
}

// Service provides bookmark management use cases.
// It handles business logic for bookmark operations and delegates
// persistence to the repository.
type Service struct {
	Repo repository.BookmarkRepository
}

// Create creates a new bookmark under the given box.
// All field constraints are checked before any store access.
// Returns a ValidationError if any input field is invalid.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.BoxID <= 0 {
		return &entity.ValidationError{Field: "boxId", Message: "must be positive"}
	}
	if err := entity.ValidateName("bookmarkName", in.BookmarkName); err != nil {
		return err
	}
	if err := entity.ValidateURL(in.URL); err != nil {
		return err
	}

	bookmark := &entity.Bookmark{
		BoxID:        in.BoxID,
		BookmarkName: in.BookmarkName,
		URL:          in.URL,
	}

	if err := s.Repo.Create(ctx, bookmark); err != nil {
		return fmt.Errorf("create bookmark: %w", err)
	}
	return nil
}

// ListByBox retrieves the box's bookmarks in insertion order.
// A box with no bookmarks yields an empty slice, not an error.
func (s *Service) ListByBox(ctx context.Context, boxID int64) ([]*entity.Bookmark, error) {
	if boxID <= 0 {
		return nil, &entity.ValidationError{Field: "boxId", Message: "must be positive"}
	}

	bookmarks, err := s.Repo.ListByBox(ctx, boxID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return bookmarks, nil
}

// Update modifies an existing bookmark with the provided input.
// Only non-nil fields are applied; everything else is left untouched.
// Returns ErrBookmarkNotFound if the bookmark does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	bookmark, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get bookmark: %w", err)
	}
	if bookmark == nil {
		return ErrBookmarkNotFound
	}

	if in.BookmarkName != nil {
		if err := entity.ValidateName("bookmarkName", *in.BookmarkName); err != nil {
			return err
		}
		bookmark.BookmarkName = *in.BookmarkName
	}
	if in.URL != nil {
		if err := entity.ValidateURL(*in.URL); err != nil {
			return err
		}
		bookmark.URL = *in.URL
	}

	if err := s.Repo.Update(ctx, bookmark); err != nil {
		return fmt.Errorf("update bookmark: %w", err)
	}
	return nil
}

// Delete removes a bookmark by its ID. Deleting a missing id is a no-op.
// Returns a ValidationError if the ID is not positive.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete bookmark: %w", err)
	}
	return nil
}
