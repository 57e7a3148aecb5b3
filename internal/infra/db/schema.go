package db

import (
	"database/sql"
	"fmt"
)

// postgresSchema declares the five tables with store-assigned ids and
// timestamps. Every owning edge carries ON DELETE CASCADE, so removing a
// parent removes its children atomically inside the same statement.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id            BIGSERIAL PRIMARY KEY,
    email         TEXT NOT NULL UNIQUE,
    nickname      VARCHAR(15) NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS boxes (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    box_name   VARCHAR(15) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
    id            BIGSERIAL PRIMARY KEY,
    box_id        BIGINT NOT NULL REFERENCES boxes(id) ON DELETE CASCADE,
    bookmark_name VARCHAR(15) NOT NULL,
    url           VARCHAR(2083) NOT NULL,
    created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS alarms (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    alarm_name VARCHAR(15) NOT NULL,
    time       TIMESTAMPTZ NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
	`CREATE TABLE IF NOT EXISTS feeds (
    id         BIGSERIAL PRIMARY KEY,
    user_id    BIGINT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`,
}

// postgresIndexes back the hot query paths: child lookups by parent id and
// the keyset-ordered feed page.
var postgresIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_boxes_user_id ON boxes(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_box_id ON bookmarks(box_id)`,
	`CREATE INDEX IF NOT EXISTS idx_alarms_user_id ON alarms(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feeds_user_page ON feeds(user_id, created_at DESC, id DESC)`,
}

// sqliteSchema mirrors the postgres layout. The REFERENCES clauses document
// the owning edges but SQLite cascade enforcement is not relied upon
// (foreign_keys is connection-scoped under a pooled database/sql); the
// sqlite adapter emulates cascades transactionally instead.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    email         TEXT NOT NULL UNIQUE,
    nickname      TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS boxes (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    box_name   TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS bookmarks (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    box_id        INTEGER NOT NULL REFERENCES boxes(id) ON DELETE CASCADE,
    bookmark_name TEXT NOT NULL,
    url           TEXT NOT NULL,
    created_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at    TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS alarms (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    alarm_name TEXT NOT NULL,
    time       TIMESTAMP NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE TABLE IF NOT EXISTS feeds (
    id         INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id    INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    content    TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
}

var sqliteIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_boxes_user_id ON boxes(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bookmarks_box_id ON bookmarks(box_id)`,
	`CREATE INDEX IF NOT EXISTS idx_alarms_user_id ON alarms(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_feeds_user_page ON feeds(user_id, created_at DESC, id DESC)`,
}

// CreateSchema applies the embedded schema for the given driver.
// Statements are idempotent, so calling it on every startup is safe.
func CreateSchema(db *sql.DB, driver string) error {
	var statements []string
	switch driver {
	case DriverPostgres:
		statements = append(postgresSchema, postgresIndexes...)
	case DriverSQLite:
		statements = append(sqliteSchema, sqliteIndexes...)
	default:
		return fmt.Errorf("CreateSchema: unsupported driver %q", driver)
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("CreateSchema: %w", err)
		}
	}

	if driver == DriverPostgres {
		// pg_trgm拡張とGINインデックスでILIKE検索を高速化
		// 拡張が使えない環境もあるためエラーは無視する
		_, _ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm`)
		_, _ = db.Exec(`CREATE INDEX IF NOT EXISTS idx_feeds_content_gin ON feeds USING gin(content gin_trgm_ops)`)
	}

	return nil
}
