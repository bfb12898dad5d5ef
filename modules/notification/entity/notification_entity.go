package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"myevent-api/core/entity"

	"github.com/google/uuid"
)

type NotificationType string

const (
	TypeAttendanceRequest  NotificationType = "solicitud_asistencia"
	TypeInvitationAccepted NotificationType = "invitacion_aceptada"
	TypeInvitationDeclined NotificationType = "invitacion_rechazada"
	TypeEventStatus        NotificationType = "estado_evento"
)

type Notification struct {
	UserID  uuid.UUID        `db:"user_id"`
	Type    NotificationType `db:"type"`
	Title   string           `db:"title"`
	Message string           `db:"message"`
	Data    JSONB            `db:"data"`
	IsRead  bool             `db:"is_read"`
	entity.BaseEntity
}

type JSONB map[string]any

func (a JSONB) Value() (driver.Value, error) {
	if a == nil {
		return nil, nil
	}
	return json.Marshal(a)
}

func (a *JSONB) Scan(value any) error {
	if value == nil {
		*a = nil
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, a)
}

type PaginatedNotificationEntity = entity.Pagination[Notification]
