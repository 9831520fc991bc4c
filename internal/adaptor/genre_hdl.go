package adaptor

import (
	"encoding/json"
	"net/http"

	"movie-catalog/internal/dto/request"
	"movie-catalog/internal/usecase"
	"movie-catalog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type GenreHandler struct {
	service usecase.GenreService
	log     *zap.Logger
}

func NewGenreHandler(service usecase.GenreService, log *zap.Logger) *GenreHandler {
	return &GenreHandler{
		service: service,
		log:     log.With(zap.String("handler", "genre")),
	}
}

// Create handles POST /api/genre
func (h *GenreHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.GenreRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create genre")
		return
	}

	utils.ResponseCreated(w, "Genre created successfully", genre)
}

// GetAll handles GET /api/genre
func (h *GenreHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	genres, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get genres")
		return
	}

	utils.ResponseSuccess(w, "Genres retrieved successfully", genres)
}

// GetByID handles GET /api/genre/{genre_id}
func (h *GenreHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "genre_id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	genre, err := h.service.GetByID(r.Context(), genreID)
	if err != nil {
		handleServiceError(w, h.log, err, "get genre by ID")
		return
	}

	utils.ResponseSuccess(w, "Genre retrieved successfully", genre)
}

// Update handles PUT /api/genre (target id travels in the body)
func (h *GenreHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.GenreUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	genre, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update genre")
		return
	}

	utils.ResponseSuccess(w, "Genre updated successfully", genre)
}

// Delete handles DELETE /api/genre/{genre_id}
func (h *GenreHandler) Delete(w http.ResponseWriter, r *http.Request) {
	genreID := chi.URLParam(r, "genre_id")
	if genreID == "" {
		utils.ResponseBadRequest(w, "Genre ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), genreID); err != nil {
		handleServiceError(w, h.log, err, "delete genre")
		return
	}

	utils.ResponseSuccess(w, "Genre deleted successfully", nil)
}
