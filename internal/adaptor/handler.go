package adaptor

import (
	"errors"
	"net/http"

	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	Director *DirectorHandler
	Actor    *ActorHandler
	Genre    *GenreHandler
	Movie    *MovieHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, log),
		Director: NewDirectorHandler(service.Director, log),
		Actor:    NewActorHandler(service.Actor, log),
		Genre:    NewGenreHandler(service.Genre, log),
		Movie:    NewMovieHandler(service.Movie, log),
	}
}

// handleServiceError maps the service error taxonomy to status codes. Every
// kind crosses the boundary unmodified; only the transport representation
// is decided here.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrReferenceNotFound):
		log.Warn(operation+" failed - missing reference", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrEntityInUse):
		log.Warn(operation+" blocked - entity in use", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials", zap.Error(err))
		utils.ResponseUnauthorized(w, "Invalid credentials")

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
