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

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// Create handles POST /api/actor
func (h *ActorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "Actor created successfully", actor)
}

// GetAll handles GET /api/actor
func (h *ActorHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.GetAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get actors")
		return
	}

	utils.ResponseSuccess(w, "Actors retrieved successfully", actors)
}

// GetByID handles GET /api/actor/{actor_id}
func (h *ActorHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "actor_id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	actor, err := h.service.GetByID(r.Context(), actorID)
	if err != nil {
		handleServiceError(w, h.log, err, "get actor by ID")
		return
	}

	utils.ResponseSuccess(w, "Actor retrieved successfully", actor)
}

// Update handles PUT /api/actor (target id travels in the body)
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req request.ActorUpdateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	actor, err := h.service.Update(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "Actor updated successfully", actor)
}

// Delete handles DELETE /api/actor/{actor_id}
func (h *ActorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID := chi.URLParam(r, "actor_id")
	if actorID == "" {
		utils.ResponseBadRequest(w, "Actor ID is required", nil)
		return
	}

	if err := h.service.Delete(r.Context(), actorID); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseSuccess(w, "Actor deleted successfully", nil)
}
