package usecase

import (
	"movie-catalog/internal/data/repository"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	Director DirectorService
	Actor    ActorService
	Genre    GenreService
	Movie    MovieService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo, config, log),
		Director: NewDirectorService(repo, log),
		Actor:    NewActorService(repo, log),
		Genre:    NewGenreService(repo, log),
		Movie:    NewMovieService(repo, log),
	}
}
