package repository

import (
	"movie-catalog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Director   DirectorRepository
	Actor      ActorRepository
	Genre      GenreRepository
	Movie      MovieRepository
	MovieGenre MovieGenreRepository
	MovieActor MovieActorRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Director:   NewDirectorRepository(db, log),
		Actor:      NewActorRepository(db, log),
		Genre:      NewGenreRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		MovieGenre: NewMovieGenreRepository(db, log),
		MovieActor: NewMovieActorRepository(db, log),
	}
}
