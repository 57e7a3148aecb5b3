package feed

import (
	"context"
	"fmt"
	"time"

	"orgbox/internal/common/pagination"
	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

// CreateInput represents the input parameters for creating a new feed item.
type CreateInput struct {
	UserID  int64
	Content string
}

// Service provides feed use cases.
// Config controls the fixed page size for Paginate.
type Service struct {
	Repo   repository.FeedRepository
	Config pagination.Config
}

// Create creates a new feed item for the given user.
func (s *Service) Create(ctx context.Context, in CreateInput) error {
	if in.UserID <= 0 {
		return &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}
	if in.Content == "" {
		return &entity.ValidationError{Field: "content", Message: "is required"}
	}

	feed := &entity.Feed{
		UserID:  in.UserID,
		Content: in.Content,
	}

	if err := s.Repo.Create(ctx, feed); err != nil {
		return fmt.Errorf("create feed: %w", err)
	}
	return nil
}

// Paginate returns one page of the user's feed, newest first, ties broken by
// id descending. A non-empty searchTerm filters by case-insensitive substring
// match on content. pageToken continues from a previous page; empty starts at
// the newest item. Requesting a page past the end yields an empty page, not
// an error.
func (s *Service) Paginate(ctx context.Context, userID int64, searchTerm, pageToken string) (pagination.Page[*entity.Feed], error) {
	var zero pagination.Page[*entity.Feed]

	svcStart := time.Now()
	defer func() {
		pagination.RecordDuration("service", time.Since(svcStart).Seconds())
	}()

	if userID <= 0 {
		pagination.RecordError("validation")
		return zero, &entity.ValidationError{Field: "userId", Message: "must be positive"}
	}

	var after *repository.FeedCursor
	continuation := pageToken != ""
	if continuation {
		cursor, err := pagination.DecodeToken(pageToken)
		if err != nil {
			pagination.RecordError("validation")
			return zero, &entity.ValidationError{Field: "pageToken", Message: "is not a valid page token"}
		}
		after = &repository.FeedCursor{CreatedAt: cursor.CreatedAt, ID: cursor.ID}
	}

	repoStart := time.Now()
	// 次ページ有無を判定するため1件多く取得する
	items, err := s.Repo.ListPage(ctx, userID, searchTerm, after, s.Config.PageSize+1)
	pagination.RecordDuration("repository", time.Since(repoStart).Seconds())
	if err != nil {
		pagination.RecordError("database")
		return zero, fmt.Errorf("paginate feed: %w", err)
	}

	hasMore := len(items) > s.Config.PageSize
	if hasMore {
		items = items[:s.Config.PageSize]
	}

	nextToken := ""
	if hasMore {
		last := items[len(items)-1]
		nextToken = pagination.EncodeToken(pagination.Cursor{
			CreatedAt: last.CreatedAt,
			ID:        last.ID,
		})
	}

	pagination.RecordRequest(continuation, hasMore)
	return pagination.NewPage(items, nextToken, hasMore), nil
}

// Get retrieves a feed item by id.
// Returns ErrFeedNotFound if the item does not exist.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Feed, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	item, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	if item == nil {
		return nil, ErrFeedNotFound
	}
	return item, nil
}

// Delete removes a feed item by its ID. Deleting a missing id is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}
	return nil
}
