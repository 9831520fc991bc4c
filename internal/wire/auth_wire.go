package wire

import (
	"movie-catalog/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(r chi.Router, handler *adaptor.AuthHandler) {
	r.Post("/api/register", handler.Register)
	r.Post("/api/login", handler.Login)
}
