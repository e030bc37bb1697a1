package dto

type ChatRequest struct {
	Message  string `json:"message" validate:"required"`
	Language string `json:"language" validate:"omitempty,oneof=en hi"` // defaults to "hi"
}

type ChatResponse struct {
	Answer string `json:"answer"`
}
