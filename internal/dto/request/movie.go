package request

type MovieRequest struct {
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	DirectorID string   `json:"director_id" validate:"required,uuid4"`
	GenreIDs   []string `json:"genre_ids" validate:"dive,uuid4"`
	ActorIDs   []string `json:"actor_ids" validate:"dive,uuid4"`
}

type MovieUpdateRequest struct {
	MovieID    string   `json:"movie_id" validate:"required,uuid4"`
	Title      string   `json:"title" validate:"required,min=1,max=200"`
	DirectorID string   `json:"director_id" validate:"required,uuid4"`
	GenreIDs   []string `json:"genre_ids" validate:"dive,uuid4"`
	ActorIDs   []string `json:"actor_ids" validate:"dive,uuid4"`
}
