package request

type DirectorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type DirectorUpdateRequest struct {
	DirectorID string `json:"director_id" validate:"required,uuid4"`
	Name       string `json:"name" validate:"required,min=1,max=100"`
}
