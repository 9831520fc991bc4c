package entity

import (
	"time"

	"github.com/google/uuid"
)

// Base is shared by every catalog row. IDs are generator-assigned and
// immutable; created_at never changes after insert, updated_at is refreshed
// on every successful mutation.
type Base struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// BaseSimple is for join-table rows, which are never updated in place.
type BaseSimple struct {
	ID        uuid.UUID `db:"id"`
	CreatedAt time.Time `db:"created_at"`
}
