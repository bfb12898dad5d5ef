package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	FullName string `json:"nombre_completo" validate:"trimmin=3,trimmax=100"`
	Email    string `json:"correo" validate:"trimemail"`
	Password string `json:"contrasena" validate:"min=8"`
	Nickname string `json:"apodo" validate:"trimmax=30"`
}

type LoginRequest struct {
	Email    string `json:"correo" validate:"notblank"`
	Password string `json:"contrasena" validate:"notblank"`
}

type UpdateProfileRequest struct {
	FullName *string `json:"nombre_completo" validate:"omitnil,trimmin=3,trimmax=100"`
	Nickname *string `json:"apodo" validate:"omitnil,trimmax=30"`
}

type UserResponse struct {
	ID           uuid.UUID `json:"usuario_id"`
	FullName     string    `json:"nombre_completo"`
	Email        string    `json:"correo"`
	Nickname     *string   `json:"apodo"`
	Role         string    `json:"rol"`
	ImageURL     *string   `json:"url_imagen"`
	Active       bool      `json:"activo"`
	RegisteredAt time.Time `json:"fecha_registro"`
}

// PublicUserResponse is what other users may see.
type PublicUserResponse struct {
	ID       uuid.UUID `json:"usuario_id"`
	FullName string    `json:"nombre_completo"`
	Nickname *string   `json:"apodo"`
	ImageURL *string   `json:"url_imagen"`
}

// SessionResponse carries a freshly issued access token. The same token is
// set as the session cookie.
type SessionResponse struct {
	Token     string       `json:"token"`
	ExpiresIn int64        `json:"expires_in"`
	User      UserResponse `json:"usuario"`
}

type StatusResponse struct {
	Active bool      `json:"activo"`
	UserID uuid.UUID `json:"usuario_id"`
	Role   string    `json:"rol"`
}

type PhotoResponse struct {
	ImageURL *string `json:"url_imagen"`
}
