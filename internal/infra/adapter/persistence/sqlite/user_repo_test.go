package sqlite_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"orgbox/internal/domain/entity"
	"orgbox/internal/infra/adapter/persistence/sqlite"
)

// ─────────────────────────────────────────────
// 1. Delete: 所有物すべてを同一トランザクションで削除する
// ─────────────────────────────────────────────
func TestUserRepo_Delete_cascadesInTx(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alarms WHERE user_id = ?")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM feeds WHERE user_id = ?")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 5))
	mock.ExpectExec(regexp.QuoteMeta(
		"DELETE FROM bookmarks WHERE box_id IN (SELECT id FROM boxes WHERE user_id = ?)")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM boxes WHERE user_id = ?")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM users WHERE id = ?")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := sqlite.NewUserRepo(db)
	if err := repo.Delete(context.Background(), 1); err != nil {
		t.Fatalf("Delete err=%v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// Delete: 途中で失敗したら全体をロールバックする
func TestUserRepo_Delete_rollbackOnFailure(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM alarms WHERE user_id = ?")).
		WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM feeds WHERE user_id = ?")).
		WithArgs(int64(1)).WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	repo := sqlite.NewUserRepo(db)
	err := repo.Delete(context.Background(), 1)
	if !errors.Is(err, entity.ErrPersistence) {
		t.Fatalf("want ErrPersistence, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 2. Create: 一意制約違反は ErrConflict に翻訳される
// ─────────────────────────────────────────────
func TestUserRepo_Create_duplicateEmail(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO users")).
		WithArgs("a@b.test", "alice", "hash").
		WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.email"))

	repo := sqlite.NewUserRepo(db)
	err := repo.Create(context.Background(), &entity.User{
		Email: "a@b.test", Nickname: "alice", PasswordHash: "hash",
	})
	if !errors.Is(err, entity.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}
