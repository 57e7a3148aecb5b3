package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"orgbox/internal/domain/entity"
	"orgbox/internal/pkg/search"
	"orgbox/internal/repository"
)

type FeedRepo struct{ db repository.DB }

func NewFeedRepo(db repository.DB) repository.FeedRepository {
	return &FeedRepo{db: db}
}

func (repo *FeedRepo) Get(ctx context.Context, id int64) (*entity.Feed, error) {
	const query = `
SELECT id, user_id, content, created_at, updated_at
FROM feeds
WHERE id = ?
LIMIT 1`
	var feed entity.Feed
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&feed.ID, &feed.UserID, &feed.Content, &feed.CreatedAt, &feed.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &feed, nil
}

// ListPage returns one page of the user's feed, newest first, ties broken by
// id descending. SQLite lacks row-value comparison on older builds, so the
// cursor condition is expanded to the equivalent OR form.
func (repo *FeedRepo) ListPage(ctx context.Context, userID int64, searchTerm string, after *repository.FeedCursor, limit int) ([]*entity.Feed, error) {
	conditions := []string{"user_id = ?"}
	args := []interface{}{userID}

	if searchTerm != "" {
		// SQLiteのLIKEはASCIIに対して大文字小文字を区別しない
		conditions = append(conditions, `content LIKE ? ESCAPE '\'`)
		args = append(args, search.LikePattern(searchTerm))
	}

	if after != nil {
		conditions = append(conditions,
			"(created_at < ? OR (created_at = ? AND id < ?))")
		args = append(args, after.CreatedAt, after.CreatedAt, after.ID)
	}

	query := fmt.Sprintf(`
SELECT id, user_id, content, created_at, updated_at
FROM feeds
WHERE %s
ORDER BY created_at DESC, id DESC
LIMIT ?`, strings.Join(conditions, " AND "))
	args = append(args, limit)

	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("ListPage", err)
	}
	defer func() { _ = rows.Close() }()

	feeds := make([]*entity.Feed, 0, limit)
	for rows.Next() {
		var feed entity.Feed
		if err := rows.Scan(&feed.ID, &feed.UserID, &feed.Content,
			&feed.CreatedAt, &feed.UpdatedAt); err != nil {
			return nil, wrapErr("ListPage: Scan", err)
		}
		feeds = append(feeds, &feed)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListPage: rows.Err", err)
	}

	return feeds, nil
}

func (repo *FeedRepo) Create(ctx context.Context, feed *entity.Feed) error {
	const query = `
INSERT INTO feeds (user_id, content)
VALUES (?, ?)`
	_, err := repo.db.ExecContext(ctx, query, feed.UserID, feed.Content)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *FeedRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM feeds WHERE id = ?`
	_, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("Delete", err)
	}
	return nil
}
