package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(r chi.Router, handler *adaptor.MovieHandler, config *utils.Config, logger *zap.Logger) {
	r.Route("/api/movie", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, logger))

		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/{movie_id}", handler.GetByID)
		r.Put("/", handler.Update)
		r.Delete("/{movie_id}", handler.Delete)
	})
}
