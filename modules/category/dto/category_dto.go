package dto

import "github.com/google/uuid"

type CreateCategoryRequest struct {
	Name string `json:"nombre"`
}

type CategoryResponse struct {
	ID   uuid.UUID `json:"categoria_id"`
	Name string    `json:"nombre"`
}
