package request

type ActorRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

type ActorUpdateRequest struct {
	ActorID string `json:"actor_id" validate:"required,uuid4"`
	Name    string `json:"name" validate:"required,min=1,max=100"`
}
