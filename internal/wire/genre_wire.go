package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(r chi.Router, handler *adaptor.GenreHandler, config *utils.Config, logger *zap.Logger) {
	r.Route("/api/genre", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, logger))

		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/{genre_id}", handler.GetByID)
		r.Put("/", handler.Update)
		r.Delete("/{genre_id}", handler.Delete)
	})
}
