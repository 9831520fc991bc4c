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

type DirectorHandler struct {
	service usecase.DirectorService
	log     *zap.Logger
}

func NewDirectorHandler(service usecase.DirectorService, log *zap.Logger) *DirectorHandler {
	return &DirectorHandler{
		service: service,
		log:     log.With(zap.String("handler", "director")),
	}
}

// Create handles POST /api/director
func (h *DirectorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	director, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create director")
		return
	}

	utils.ResponseCreated(w, "Director created successfully", director)
}

// GetAll handles GET /api/director
func (h *DirectorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	directors, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get directors")
		return
	}

	utils.ResponseSuccess(w, "Directors retrieved successfully", directors)
}

// GetByID handles GET /api/director/{director_id}
func (h *DirectorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	directorID := chi.URLParam(r, "director_id")
	if directorID == "" {
		utils.ResponseBadRequest(w, "Director ID is required", nil)
		return
	}

	director, err := h.service.GetByID(r.Context(), directorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get director by ID")
		return
	}

	utils.ResponseSuccess(w, "Director retrieved successfully", director)
}

// Update handles PUT /api/director (target id travels in the body)
func (h *DirectorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.DirectorUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	director, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update director")
		return
	}

	utils.ResponseSuccess(w, "Director updated successfully", director)
}

// Delete handles DELETE /api/director/{director_id}
func (h *DirectorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	directorID := chi.URLParam(r, "director_id")
	if directorID == "" {
		utils.ResponseBadRequest(w, "Director ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), directorID); err != nil {
		handleServiceError(w, h.log, err, "delete director")
		return
	}

	utils.ResponseSuccess(w, "Director deleted successfully", nil)
}
