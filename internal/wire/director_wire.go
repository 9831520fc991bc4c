package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireDirector(r chi.Router, handler *adaptor.DirectorHandler, config *utils.Config, logger *zap.Logger) {
	r.Route("/api/director", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, logger))

		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/{director_id}", handler.GetByID)
		r.Put("/", handler.Update)
		r.Delete("/{director_id}", handler.Delete)
	})
}
