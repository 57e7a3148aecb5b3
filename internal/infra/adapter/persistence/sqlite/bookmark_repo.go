package sqlite

import (
	"context"
	"database/sql"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

type BookmarkRepo struct{ db repository.DB }

func NewBookmarkRepo(db repository.DB) repository.BookmarkRepository {
	return &BookmarkRepo{db: db}
}

func (repo *BookmarkRepo) Get(ctx context.Context, id int64) (*entity.Bookmark, error) {
	const query = `
SELECT id, box_id, bookmark_name, url, created_at, updated_at
FROM bookmarks
WHERE id = ?
LIMIT 1`
	var bookmark entity.Bookmark
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&bookmark.ID, &bookmark.BoxID, &bookmark.BookmarkName,
		&bookmark.URL, &bookmark.CreatedAt, &bookmark.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &bookmark, nil
}

func (repo *BookmarkRepo) ListByBox(ctx context.Context, boxID int64) ([]*entity.Bookmark, error) {
	const query = `
SELECT id, box_id, bookmark_name, url, created_at, updated_at
FROM bookmarks
WHERE box_id = ?
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, boxID)
	if err != nil {
		return nil, wrapErr("ListByBox", err)
	}
	defer func() { _ = rows.Close() }()

	bookmarks := make([]*entity.Bookmark, 0, 16)
	for rows.Next() {
		var bookmark entity.Bookmark
		if err := rows.Scan(&bookmark.ID, &bookmark.BoxID, &bookmark.BookmarkName,
			&bookmark.URL, &bookmark.CreatedAt, &bookmark.UpdatedAt); err != nil {
			return nil, wrapErr("ListByBox: Scan", err)
		}
		bookmarks = append(bookmarks, &bookmark)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListByBox: rows.Err", err)
	}

	return bookmarks, nil
}

func (repo *BookmarkRepo) Create(ctx context.Context, bookmark *entity.Bookmark) error {
	const query = `
INSERT INTO bookmarks (box_id, bookmark_name, url)
VALUES (?, ?, ?)`
	_, err := repo.db.ExecContext(ctx, query,
		bookmark.BoxID, bookmark.BookmarkName, bookmark.URL,
	)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *BookmarkRepo) Update(ctx context.Context, bookmark *entity.Bookmark) error {
	const query = `
UPDATE bookmarks SET
    bookmark_name = ?,
    url           = ?,
    updated_at    = CURRENT_TIMESTAMP
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		bookmark.BookmarkName, bookmark.URL, bookmark.ID,
	)
	if err != nil {
		return wrapErr("Update", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapErr("Update: RowsAffected", err)
	}
	if n == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (repo *BookmarkRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM bookmarks WHERE id = ?`
	_, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("Delete", err)
	}
	return nil
}
