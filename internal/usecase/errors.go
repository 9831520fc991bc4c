// Package usecase holds one service per entity family. Each operation
// validates its input, enforces referential integrity through the
// repositories, and performs a single repository write. The sentinel errors
// below are the service-level taxonomy; handlers map them to status codes
// with errors.Is.
package usecase

import "errors"

var (
	// ErrInvalidInput means the payload failed structural validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound means the target entity id does not exist.
	ErrNotFound = errors.New("not found")

	// ErrReferenceNotFound means a referenced director/genre/actor id does
	// not exist. No partial write happens when it is returned.
	ErrReferenceNotFound = errors.New("referenced entity not found")

	// ErrEntityInUse means a delete was blocked because at least one movie
	// still references the entity.
	ErrEntityInUse = errors.New("entity still referenced by a movie")

	// ErrConflict means a uniqueness rule was violated (register).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials means login failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
