package request

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=50"`
}

type GenreUpdateRequest struct {
	GenreID string `json:"genre_id" validate:"required,uuid4"`
	Name    string `json:"name" validate:"required,min=1,max=50"`
}
