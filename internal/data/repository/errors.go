// Package repository holds the persistence abstractions and their pgx
// implementations. Sentinel errors let the use-case layer distinguish
// failure kinds without inspecting messages.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by Update and Delete when the target row does not
// exist. Single-row finders return (nil, nil) instead.
var ErrNotFound = errors.New("repository: not found")

// ErrForeignKey is returned when a write violates a foreign-key constraint.
// The existence checks in the use cases are read-then-write, so a referenced
// row can disappear between check and insert; the database constraint is the
// backstop and this error is how it surfaces.
var ErrForeignKey = errors.New("repository: foreign key violation")

const pgForeignKeyViolation = "23503"

// classifyPgError maps a foreign-key violation to ErrForeignKey and leaves
// everything else untouched.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return ErrForeignKey
	}
	return err
}
