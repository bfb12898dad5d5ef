package entity

import (
	"time"

	"github.com/google/uuid"
)

type ParticipationRole string

const (
	RoleOrganizer   ParticipationRole = "organizador"
	RoleAttendee    ParticipationRole = "asistente"
	RoleCoOrganizer ParticipationRole = "coorganizador"
)

type Participation struct {
	ID           uuid.UUID         `db:"id"`
	EventID      uuid.UUID         `db:"event_id"`
	UserID       uuid.UUID         `db:"user_id"`
	Role         ParticipationRole `db:"role"`
	RegisteredAt time.Time         `db:"registered_at"`
	UpdatedAt    time.Time         `db:"updated_at"`
}

// ViewerRole is a user's effective relationship to an event.
type ViewerRole string

const (
	ViewerOrganizer         ViewerRole = "organizador"
	ViewerAttendee          ViewerRole = "asistente"
	ViewerPendingAttendance ViewerRole = "asistenciapendiente"
	ViewerNone              ViewerRole = "nada"
)

// Summary counts the events a user created, attends and saved.
type Summary struct {
	Created   []EventListItem
	Attending []EventListItem
	Saved     []EventListItem
}
