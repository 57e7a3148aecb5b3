// Package postgres provides PostgreSQL implementations of repository interfaces.
// Foreign keys are declared ON DELETE CASCADE, so parent deletes remove child
// rows natively and atomically.
package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"orgbox/internal/domain/entity"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// wrapErr translates a store failure into a domain error kind.
// Unique violations become ErrConflict; everything else is a persistence
// failure outside the caller's control.
func wrapErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%s: %w: %s", op, entity.ErrConflict, pgErr.ConstraintName)
	}
	return fmt.Errorf("%s: %w: %v", op, entity.ErrPersistence, err)
}
