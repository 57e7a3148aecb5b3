package sqlite

import (
	"context"
	"database/sql"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

type BoxRepo struct{ db repository.DB }

func NewBoxRepo(db repository.DB) repository.BoxRepository {
	return &BoxRepo{db: db}
}

func (repo *BoxRepo) Get(ctx context.Context, id int64) (*entity.Box, error) {
	const query = `
SELECT id, user_id, box_name, created_at, updated_at
FROM boxes
WHERE id = ?
LIMIT 1`
	var box entity.Box
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&box.ID, &box.UserID, &box.BoxName, &box.CreatedAt, &box.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &box, nil
}

func (repo *BoxRepo) ListByUser(ctx context.Context, userID int64) ([]*entity.Box, error) {
	const query = `
SELECT id, user_id, box_name, created_at, updated_at
FROM boxes
WHERE user_id = ?
ORDER BY id ASC`
	rows, err := repo.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapErr("ListByUser", err)
	}
	defer func() { _ = rows.Close() }()

	boxes := make([]*entity.Box, 0, 16)
	for rows.Next() {
		var box entity.Box
		if err := rows.Scan(&box.ID, &box.UserID, &box.BoxName,
			&box.CreatedAt, &box.UpdatedAt); err != nil {
			return nil, wrapErr("ListByUser: Scan", err)
		}
		boxes = append(boxes, &box)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr("ListByUser: rows.Err", err)
	}

	return boxes, nil
}

func (repo *BoxRepo) Create(ctx context.Context, box *entity.Box) error {
	const query = `
INSERT INTO boxes (user_id, box_name)
VALUES (?, ?)`
	_, err := repo.db.ExecContext(ctx, query, box.UserID, box.BoxName)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *BoxRepo) Update(ctx context.Context, box *entity.Box) error {
	const query = `
UPDATE boxes SET
    box_name   = ?,
    updated_at = CURRENT_TIMESTAMP
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query, box.BoxName, box.ID)
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

// Delete removes the box and its bookmarks in one transaction, so no
// intermediate state exists where the box is gone but a bookmark remains.
func (repo *BoxRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("Delete: BeginTx", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE box_id = ?`, id); err != nil {
		return wrapErr("Delete", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM boxes WHERE id = ?`, id); err != nil {
		return wrapErr("Delete", err)
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("Delete: Commit", err)
	}
	return nil
}
