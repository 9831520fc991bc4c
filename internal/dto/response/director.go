package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type DirectorResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converter
func DirectorToResponse(director *entity.Director) DirectorResponse {
	return DirectorResponse{
		ID:        director.ID.String(),
		Name:      director.Name,
		CreatedAt: director.CreatedAt,
		UpdatedAt: director.UpdatedAt,
	}
}

func DirectorsToResponse(directors []*entity.Director) []DirectorResponse {
	out := make([]DirectorResponse, len(directors))
	for i, director := range directors {
		out[i] = DirectorToResponse(director)
	}
	return out
}
