package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveEventRequest struct {
	EventID uuid.UUID `json:"evento_id"`
}

type SavedEventResponse struct {
	EventID uuid.UUID `json:"evento_id"`
	SavedAt time.Time `json:"fecha_guardado"`
}
