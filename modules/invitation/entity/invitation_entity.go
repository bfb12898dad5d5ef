package entity

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	StatusPending  InvitationStatus = "pendiente"
	StatusAccepted InvitationStatus = "aceptada"
	StatusDeclined InvitationStatus = "rechazada"
)

// DefaultRequestMessage is stored on invitations raised by a join request.
const DefaultRequestMessage = "Solicitud de invitación al evento."

// Invitation is a request to join a private event. OrganizerID is the user
// who decides it and InviteeID the user asking to attend.
type Invitation struct {
	ID          uuid.UUID        `db:"id"`
	EventID     uuid.UUID        `db:"event_id"`
	OrganizerID uuid.UUID        `db:"organizer_id"`
	InviteeID   uuid.UUID        `db:"invitee_id"`
	Status      InvitationStatus `db:"status"`
	Message     string           `db:"message"`
	InvitedAt   time.Time        `db:"invited_at"`
	RespondedAt *time.Time       `db:"responded_at"`
	UpdatedAt   time.Time        `db:"updated_at"`
}

// InvitationDetail adds the event and invitee fields shown in listings.
type InvitationDetail struct {
	Invitation
	EventTitle      string  `db:"event_title"`
	EventSlug       string  `db:"event_slug"`
	InviteeName     string  `db:"invitee_name"`
	InviteeNickname *string `db:"invitee_nickname"`
	InviteeImageURL *string `db:"invitee_image_url"`
}
