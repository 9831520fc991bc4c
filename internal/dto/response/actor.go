package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type ActorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converter
func ActorToResponse(actor *entity.Actor) ActorResponse {
	return ActorResponse{
		ID:        actor.ID.String(),
		Name:      actor.Name,
		CreatedAt: actor.CreatedAt,
		UpdatedAt: actor.UpdatedAt,
	}
}

func ActorsToResponse(actors []*entity.Actor) []ActorResponse {
	out := make([]ActorResponse, len(actors))
	for i, actor := range actors {
		out[i] = ActorToResponse(actor)
	}
	return out
}
