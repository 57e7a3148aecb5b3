package postgres_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"orgbox/internal/infra/adapter/persistence/postgres"
	"orgbox/internal/repository"
)

func feedRows(ids ...int64) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"id", "user_id", "content", "created_at", "updated_at"})
	now := time.Now()
	for _, id := range ids {
		rows.AddRow(id, int64(1), "content", now, now)
	}
	return rows
}

// ─────────────────────────────────────────────
// 1. ListPage: 先頭ページ（カーソル・検索語なし）
// ─────────────────────────────────────────────
func TestFeedRepo_ListPage_firstPage(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
		WithArgs(int64(1), 21).
		WillReturnRows(feedRows(30, 29, 28))

	repo := postgres.NewFeedRepo(db)
	got, err := repo.ListPage(context.Background(), 1, "", nil, 21)
	if err != nil {
		t.Fatalf("ListPage err=%v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 2. ListPage: 検索語あり（エスケープ済みパターンが渡る）
// ─────────────────────────────────────────────
func TestFeedRepo_ListPage_withSearch(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`content ILIKE $2 ESCAPE '\'`)).
		WithArgs(int64(1), `%50\%\_off%`, 21).
		WillReturnRows(feedRows(5))

	repo := postgres.NewFeedRepo(db)
	got, err := repo.ListPage(context.Background(), 1, "50%_off", nil, 21)
	if err != nil {
		t.Fatalf("ListPage err=%v", err)
	}
	if len(got) != 1 {
		t.Fatalf("len=%d, want 1", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 3. ListPage: カーソルあり
// ─────────────────────────────────────────────
func TestFeedRepo_ListPage_withCursor(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	cursorAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("(created_at, id) < ($2, $3)")).
		WithArgs(int64(1), cursorAt, int64(20), 21).
		WillReturnRows(feedRows(19, 18))

	repo := postgres.NewFeedRepo(db)
	got, err := repo.ListPage(context.Background(), 1, "",
		&repository.FeedCursor{CreatedAt: cursorAt, ID: 20}, 21)
	if err != nil {
		t.Fatalf("ListPage err=%v", err)
	}
	if len(got) != 2 {
		t.Fatalf("len=%d, want 2", len(got))
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

// ─────────────────────────────────────────────
// 4. BuildWhereClause の条件組み立て
// ─────────────────────────────────────────────
func TestFeedQueryBuilder_BuildWhereClause(t *testing.T) {
	qb := postgres.NewFeedQueryBuilder()
	cursorAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		searchTerm string
		after      *repository.FeedCursor
		wantClause string
		wantArgs   int
	}{
		{
			name:       "owner only",
			wantClause: "WHERE user_id = $1",
			wantArgs:   1,
		},
		{
			name:       "with search",
			searchTerm: "meeting",
			wantClause: `WHERE user_id = $1 AND content ILIKE $2 ESCAPE '\'`,
			wantArgs:   2,
		},
		{
			name:       "with cursor",
			after:      &repository.FeedCursor{CreatedAt: cursorAt, ID: 9},
			wantClause: "WHERE user_id = $1 AND (created_at, id) < ($2, $3)",
			wantArgs:   3,
		},
		{
			name:       "search and cursor",
			searchTerm: "meeting",
			after:      &repository.FeedCursor{CreatedAt: cursorAt, ID: 9},
			wantClause: `WHERE user_id = $1 AND content ILIKE $2 ESCAPE '\' AND (created_at, id) < ($3, $4)`,
			wantArgs:   4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clause, args := qb.BuildWhereClause(1, tt.searchTerm, tt.after)
			if clause != tt.wantClause {
				t.Errorf("clause = %q, want %q", clause, tt.wantClause)
			}
			if len(args) != tt.wantArgs {
				t.Errorf("len(args) = %d, want %d", len(args), tt.wantArgs)
			}
			if strings.Contains(clause, "?") {
				t.Errorf("postgres clause should not contain ?: %q", clause)
			}
		})
	}
}
