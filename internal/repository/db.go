// Package repository defines the persistence interfaces consumed by the
// usecase layer, together with the minimal database handle abstraction
// shared by the SQL adapters.
package repository

import (
	"context"
	"database/sql"
)

// DB is the query surface repositories need from a database handle.
// *sql.DB satisfies it directly; it is also implemented by the
// circuit-breaker wrapper so adapters stay agnostic of resilience wiring.
type DB interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}
