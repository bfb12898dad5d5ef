package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateEventRequest struct {
	Title            string     `json:"titulo" validate:"trimmin=3,trimmax=60"`
	ShortDescription string     `json:"descripcion_corta" validate:"trimmin=10,trimmax=200"`
	LongDescription  string     `json:"descripcion_larga" validate:"longdesc,trimmax=1000"`
	Date             string     `json:"fecha_evento" validate:"notblank,isodate,notpast"`
	Time             string     `json:"hora" validate:"notblank"`
	Visibility       string     `json:"tipo_evento" validate:"oneof=publico privado"`
	Location         string     `json:"ubicacion"`
	Latitude         string     `json:"latitud"`
	Longitude        string     `json:"longitud"`
	City             string     `json:"ciudad"`
	District         string     `json:"distrito"`
	MapURL           string     `json:"url_direccion"`
	ResourceURL      string     `json:"url_recurso"`
	ImageURL         string     `json:"url_imagen"`
	CategoryID       *uuid.UUID `json:"categoria_id"`
	OrganizerID      uuid.UUID  `json:"-" validate:"required"`
}

// UpdateEventRequest carries only the fields to change.
type UpdateEventRequest struct {
	Title            *string    `json:"titulo" validate:"omitnil,trimmin=3,trimmax=60"`
	ShortDescription *string    `json:"descripcion_corta" validate:"omitnil,trimmin=10,trimmax=200"`
	LongDescription  *string    `json:"descripcion_larga" validate:"omitnil,trimmax=1000"`
	Date             *string    `json:"fecha_evento" validate:"omitnil,notblank,isodate,notpast"`
	Time             *string    `json:"hora" validate:"omitnil,notblank"`
	Location         *string    `json:"ubicacion"`
	Latitude         *string    `json:"latitud"`
	Longitude        *string    `json:"longitud"`
	City             *string    `json:"ciudad"`
	District         *string    `json:"distrito"`
	MapURL           *string    `json:"url_direccion"`
	ResourceURL      *string    `json:"url_recurso"`
	ImageURL         *string    `json:"url_imagen"`
	CategoryID       *uuid.UUID `json:"categoria_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"estado"`
}

type AttendanceRequest struct {
	EventID uuid.UUID `json:"evento_id"`
}

type EventResponse struct {
	ID               uuid.UUID  `json:"evento_id"`
	Title            string     `json:"titulo"`
	ShortDescription string     `json:"descripcion_corta"`
	LongDescription  *string    `json:"descripcion_larga"`
	Date             string     `json:"fecha_evento"`
	Time             string     `json:"hora"`
	Visibility       string     `json:"tipo_evento"`
	Location         *string    `json:"ubicacion"`
	Latitude         *string    `json:"latitud"`
	Longitude        *string    `json:"longitud"`
	City             *string    `json:"ciudad"`
	District         *string    `json:"distrito"`
	MapURL           *string    `json:"url_direccion"`
	DirectionsURL    *string    `json:"url_direcciones"`
	ResourceURL      *string    `json:"url_recurso"`
	ImageURL         *string    `json:"url_imagen"`
	CategoryID       *uuid.UUID `json:"categoria_id"`
	Status           string     `json:"estado_evento"`
	Slug             string     `json:"slug"`
	CreatedAt        time.Time  `json:"fecha_creacion_evento"`
}

type OrganizerResponse struct {
	ID       uuid.UUID `json:"usuario_id"`
	FullName *string   `json:"nombre_completo"`
	Nickname *string   `json:"apodo"`
	ImageURL *string   `json:"url_imagen"`
}

type EventListItemResponse struct {
	EventResponse
	Organizer     *OrganizerResponse `json:"organizador,omitempty"`
	CategoryName  *string            `json:"categoria,omitempty"`
	AttendeeCount int                `json:"asistentes"`
}

// EventDetailResponse is an event as seen by a specific viewer.
type EventDetailResponse struct {
	EventListItemResponse
	Role string `json:"rol"`
}

type SummaryResponse struct {
	CreatedCount   int                     `json:"total_creados"`
	AttendingCount int                     `json:"total_asistiendo"`
	SavedCount     int                     `json:"total_guardados"`
	Created        []EventListItemResponse `json:"creados"`
	Attending      []EventListItemResponse `json:"asistiendo"`
	Saved          []EventListItemResponse `json:"guardados"`
}

type UploadResponse struct {
	URL string `json:"url"`
}
