package response

import (
	"time"

	"movie-catalog/internal/data/entity"
)

type MovieResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	DirectorID string    `json:"director_id"`
	GenreIDs   []string  `json:"genre_ids"`
	ActorIDs   []string  `json:"actor_ids"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Helper converter. Genre and actor ids come from the join tables, so the
// caller supplies them alongside the movie row.
func MovieToResponse(movie *entity.Movie, genreIDs, actorIDs []string) MovieResponse {
	if genreIDs == nil {
		genreIDs = []string{}
	}
	if actorIDs == nil {
		actorIDs = []string{}
	}

	return MovieResponse{
		ID:         movie.ID.String(),
		Title:      movie.Title,
		DirectorID: movie.DirectorID.String(),
		GenreIDs:   genreIDs,
		ActorIDs:   actorIDs,
		CreatedAt:  movie.CreatedAt,
		UpdatedAt:  movie.UpdatedAt,
	}
}
