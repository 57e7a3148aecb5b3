package postgres

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
WHERE id = $1
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
WHERE email = $1
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
VALUES ($1, $2, $3)`
	_, err := repo.db.ExecContext(ctx, query,
		user.Email, user.Nickname, user.PasswordHash,
	)
	if err != nil {
		return wrapErr("Create", err)
	}
	return nil
}

// Update writes the mutable profile fields. ID and email are immutable
// through this path.
func (repo *UserRepo) Update(ctx context.Context, user *entity.User) error {
	const query = `
UPDATE users SET
    nickname      = $1,
    password_hash = $2,
    updated_at    = now()
WHERE id = $3`
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

// Delete removes the user. The schema cascades the delete to the user's
// alarms, boxes, bookmarks and feed items in the same statement.
func (repo *UserRepo) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM users WHERE id = $1`
	_, err := repo.db.ExecContext(ctx, query, id)
	if err != nil {
		return wrapErr("Delete", err)
	}
	// 存在しないidの削除はエラーにしない（冪等）
	return nil
}
