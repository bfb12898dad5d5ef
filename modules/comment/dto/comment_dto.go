package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	Message string `json:"mensaje"`
}

type AuthorResponse struct {
	ID       uuid.UUID `json:"usuario_id"`
	FullName string    `json:"nombre_completo"`
	Nickname *string   `json:"apodo"`
	ImageURL *string   `json:"url_imagen"`
}

type CommentResponse struct {
	ID        uuid.UUID      `json:"comentario_id"`
	EventID   uuid.UUID      `json:"evento_id"`
	Message   string         `json:"mensaje"`
	Likes     int            `json:"likes"`
	Dislikes  int            `json:"dislikes"`
	CreatedAt time.Time      `json:"fecha"`
	Author    AuthorResponse `json:"usuario"`
}

type ReactionResponse struct {
	ID       uuid.UUID `json:"comentario_id"`
	Likes    int       `json:"likes"`
	Dislikes int       `json:"dislikes"`
}
