package dto

import (
	"time"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID      `json:"id"`
	Type      string         `json:"tipo"`
	Title     string         `json:"titulo"`
	Message   string         `json:"mensaje"`
	Data      map[string]any `json:"data,omitempty"`
	IsRead    bool           `json:"leida"`
	CreatedAt time.Time      `json:"fecha"`
}

// MarkAsReadRequest marks every unread notification when IDs is empty.
type MarkAsReadRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type UnreadCountResponse struct {
	Count int `json:"count"`
}
