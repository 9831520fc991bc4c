package entity

import (
	"github.com/google/uuid"
)

type Movie struct {
	Base
	Title      string    `db:"title"`
	DirectorID uuid.UUID `db:"director_id"`
}
