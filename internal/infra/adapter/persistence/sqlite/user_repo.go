package sqlite

import (
	"context"
	"database/sql"

	"orgbox/internal/domain/entity"
	"orgbox/internal/repository"
)

type UserRepo struct{ db repository.DB }

func NewUserRepo(db repository.DB) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id int64) (*entity.User, error) {
	const query = `
SELECT id, email, nickname, password_hash, created_at, updated_at
FROM users
WHERE id = ?
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("Get", err)
	}
	return &user, nil
}

func (repo *UserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	const query = `
SELECT id, email, nickname, password_hash, created_at, updated_at
FROM users
WHERE email = ?
LIMIT 1`
	var user entity.User
	err := repo.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID, &user.Email, &user.Nickname, &user.PasswordHash,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapErr("GetByEmail", err)
	}
	return &user, nil
}

func (repo *UserRepo) Create(ctx context.Context, user *entity.User) error {
	const query = `
INSERT INTO users (email, nickname, password_hash)
VALUES (?, ?, ?)`
	_, err := repo.db.ExecContext(ctx, query,
		user.Email, user.Nickname, user.PasswordHash,
	)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users SET
    nickname      = ?,
    password_hash = ?,
    updated_at    = CURRENT_TIMESTAMP
WHERE id = ?`
	res, err := repo.db.ExecContext(ctx, query,
		user.Nickname, user.PasswordHash, user.ID,
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

// Delete removes the user together with every record the user owns:
// alarms, feed items, bookmarks of the user's boxes, and the boxes
// themselves. All deletes commit in one transaction or not at all.
func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("Delete: BeginTx", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`DELETE FROM alarms WHERE user_id = ?`,
		`DELETE FROM feeds WHERE user_id = ?`,
		`DELETE FROM bookmarks WHERE box_id IN (SELECT id FROM boxes WHERE user_id = ?)`,
		`DELETE FROM boxes WHERE user_id = ?`,
		`DELETE FROM users WHERE id = ?`,
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			return wrapErr("Delete", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return wrapErr("Delete: Commit", err)
	}
	return nil
}
