package wire

import (
	"movie-catalog/internal/adaptor"
	"movie-catalog/pkg/middleware"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireActor(r chi.Router, handler *adaptor.ActorHandler, config *utils.Config, logger *zap.Logger) {
	r.Route("/api/actor", func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT.Secret, logger))

		r.Post("/", handler.Create)
		r.Get("/", handler.GetAll)
		r.Get("/{actor_id}", handler.GetByID)
		r.Put("/", handler.Update)
		r.Delete("/{actor_id}", handler.Delete)
	})
}
