package postgres

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
WHERE id = $1
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
WHERE user_id = $1
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
VALUES ($1, $2)`
	_, err := repo.db.ExecContext(ctx, query, box.UserID, box.BoxName)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

// Update writes the box name. ID and user_id are immutable through this path.
func (repo *BoxRepo) Update(ctx context.Context, box *entity.Box) error {
	const query = `
UPDATE boxes SET
    box_name   = $1,
    updated_at = now()
WHERE id = $2`
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

// Delete removes the box. The schema cascades the delete to the box's
// bookmarks in the same statement.
func (repo *BoxRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM boxes WHERE id = $1`
	_, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("Delete", err)
	}
	return nil
}
