// Package sqlite provides SQLite implementations of repository interfaces.
//
// SQLite's foreign_keys pragma is connection-scoped and database/sql pools
// connections, so the cascade invariant is not delegated to the schema here.
// Parent deletes instead remove child rows and the parent row inside a single
// transaction, which keeps the cascade atomic with the parent delete.
package sqlite

import (
	"fmt"
	"strings"

	"orgbox/internal/domain/entity"
)

// wrapErr translates a store failure into a domain error kind.
// The driver reports constraint failures by message text; unique violations
// become ErrConflict, everything else a persistence failure.
func wrapErr(op string, err error) error {
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return fmt.Errorf("%s: %w: %v", op, entity.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w: %v", op, entity.ErrPersistence, err)
}
