package dto

import (
	"time"

	"github.com/google/uuid"
)

type InviteeResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"nombre"`
	Nickname *string   `json:"apodo"`
	ImageURL *string   `json:"url_imagen"`
}

type InvitationResponse struct {
	ID          uuid.UUID       `json:"id"`
	EventID     uuid.UUID       `json:"evento_id"`
	EventTitle  string          `json:"evento_titulo"`
	EventSlug   string          `json:"evento_slug"`
	OrganizerID uuid.UUID       `json:"organizador_id"`
	Invitee     InviteeResponse `json:"usuario"`
	Status      string          `json:"estado"`
	Message     string          `json:"mensaje"`
	InvitedAt   time.Time       `json:"fecha_invitacion"`
	RespondedAt *time.Time      `json:"fecha_respuesta"`
}

type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitaciones"`
	Total       int                  `json:"total"`
}

type CountResponse struct {
	Count int `json:"count"`
}
