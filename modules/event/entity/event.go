package entity

import (
	"time"

	"github.com/google/uuid"
)

type EventStatus string

const (
	EventStatusPending  EventStatus = "pendiente"
	EventStatusActive   EventStatus = "activo"
	EventStatusRejected EventStatus = "rechazado"
	EventStatusExpired  EventStatus = "vencido"
)

func (s EventStatus) Valid() bool {
	switch s {
	case EventStatusPending, EventStatusActive, EventStatusRejected, EventStatusExpired:
		return true
	}
	return false
}

type Visibility string

const (
	VisibilityPublic  Visibility = "publico"
	VisibilityPrivate Visibility = "privado"
)

type Event struct {
	ID               uuid.UUID   `db:"id"`
	Title            string      `db:"title"`
	ShortDescription string      `db:"short_description"`
	LongDescription  *string     `db:"long_description"`
	Date             time.Time   `db:"date"`
	Time             string      `db:"time"`
	Visibility       Visibility  `db:"visibility"`
	Location         *string     `db:"location"`
	Latitude         *string     `db:"latitude"`
	Longitude        *string     `db:"longitude"`
	City             *string     `db:"city"`
	District         *string     `db:"district"`
	MapURL           *string     `db:"map_url"`
	ResourceURL      *string     `db:"resource_url"`
	ImageURL         *string     `db:"image_url"`
	CategoryID       *uuid.UUID  `db:"category_id"`
	Status           EventStatus `db:"status"`
	Slug             string      `db:"slug"`
	CreatedAt        time.Time   `db:"created_at"`
	UpdatedAt        time.Time   `db:"updated_at"`
}

// EventListItem is an event row joined with its organizer, category and
// attendee count, as returned by listing queries.
type EventListItem struct {
	Event
	OrganizerID       *uuid.UUID `db:"organizer_id"`
	OrganizerName     *string    `db:"organizer_name"`
	OrganizerNickname *string    `db:"organizer_nickname"`
	OrganizerImageURL *string    `db:"organizer_image_url"`
	CategoryName      *string    `db:"category_name"`
	AttendeeCount     int        `db:"attendee_count"`
}

// EventFilter narrows listing queries. Zero values mean "no filter".
type EventFilter struct {
	Visibility Visibility
	Status     EventStatus
	CategoryID *uuid.UUID
	City       string
	District   string
	Search     string
	From       *time.Time
	To         *time.Time
	PageNumber int
	PageSize   int
}
