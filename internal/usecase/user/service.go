package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

// CreateInput represents the input parameters for creating a new user.
// PasswordHash is stored as given; hashing belongs to the caller.
type CreateInput struct {
	Email        string
	Nickname     string
	PasswordHash string
}

// UpdateInput represents the input parameters for updating an existing user.
// Nil fields are left untouched; ID and Email are immutable.
type UpdateInput struct {
	ID           int64
	Nickname     *string
	PasswordHash *string
}

// Service provides user management use cases.
type Service struct {
	Repo repository.UserRepository
}

// Create creates a new user account.
// Returns ErrDuplicateEmail if the email is already registered.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.Email == "" {
		return &entity.ValidationError{Field: "email", Message: "is required"}
	}
	if !strings.Contains(in.Email, "@") {
		return &entity.ValidationError{Field: "email", Message: "is not a valid address"}
	}
	if err := entity.ValidateName("nickname", in.Nickname); err != nil {
		return err
	}
	if in.PasswordHash == "" {
		return &entity.ValidationError{Field: "passwordHash", Message: "is required"}
	}

	user := &entity.User{
		Email:        in.Email,
		Nickname:     in.Nickname,
		PasswordHash: in.PasswordHash,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		if errors.Is(err, entity.ErrConflict) {
			return ErrDuplicateEmail
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Get retrieves a user by id.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.User, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	user, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// GetByEmail retrieves a user by email.
// Returns ErrUserNotFound if no user has the given email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if email == "" {
		return nil, &entity.ValidationError{Field: "email", Message: "is required"}
	}

	user, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// Update modifies an existing user with the provided input.
// Only non-nil fields are applied; everything else is left untouched.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	if in.ID <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	user, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}

	if in.Nickname != nil {
		if err := entity.ValidateName("nickname", *in.Nickname); err != nil {
			return err
		}
		user.Nickname = *in.Nickname
	}
	if in.PasswordHash != nil {
		if *in.PasswordHash == "" {
			return &entity.ValidationError{Field: "passwordHash", Message: "is required"}
		}
		user.PasswordHash = *in.PasswordHash
	}

	if err := s.Repo.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

// Delete removes a user and, through the cascade invariant, everything the
// user owns. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
