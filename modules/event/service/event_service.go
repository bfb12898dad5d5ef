package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"myevent-api/core/clock"
	coreDto "myevent-api/core/dto"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/utils"
	"myevent-api/modules/event/dto"
	"myevent-api/modules/event/entity"
	"myevent-api/modules/event/location"
	"myevent-api/modules/event/mapper"
	"myevent-api/modules/event/repository"
	"myevent-api/modules/event/validator"
	invEntity "myevent-api/modules/invitation/entity"
	notifEntity "myevent-api/modules/notification/entity"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

const slugSuffixLength = 6

// InvitationStore is the part of the invitation repository that join
// requests and role resolution need.
type InvitationStore interface {
	Create(ctx context.Context, invitation *invEntity.Invitation) error
	GetLatestByEventAndInvitee(ctx context.Context, eventID, inviteeID uuid.UUID) (*invEntity.Invitation, error)
}

// Notifier delivers in-app notifications.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind notifEntity.NotificationType, title, message string, data map[string]any) error
}

// Options configures date handling and validation strictness.
type Options struct {
	Location *time.Location
	Policy   validator.Policy
}

type EventService struct {
	events         repository.EventRepositoryInterface
	participations repository.ParticipationRepositoryInterface
	invitations    InvitationStore
	notifier       Notifier
	clock          clock.Clock
	loc            *time.Location
	policy         validator.Policy
}

func NewEventService(
	events repository.EventRepositoryInterface,
	participations repository.ParticipationRepositoryInterface,
	invitations InvitationStore,
	notifier Notifier,
	clk clock.Clock,
	opts Options,
) *EventService {
	if clk == nil {
		clk = clock.New()
	}
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}
	return &EventService{
		events:         events,
		participations: participations,
		invitations:    invitations,
		notifier:       notifier,
		clock:          clk,
		loc:            loc,
		policy:         opts.Policy,
	}
}

func (s *EventService) today() time.Time {
	return clock.Today(s.clock.Now(), s.loc)
}

// CreateEvent validates the request, derives the location fields and stores
// the event in pendiente together with its organizer.
func (s *EventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	today := s.today()
	if v := validator.ValidateCreateEventRequest(req, today, s.policy); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	date, err := validator.ParseDate(req.Date, s.loc)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "La fecha del evento no es válida", err)
	}

	now := s.clock.Now()
	event := &entity.Event{
		Title:            strings.TrimSpace(req.Title),
		ShortDescription: strings.TrimSpace(req.ShortDescription),
		LongDescription:  optional(req.LongDescription),
		Date:             date,
		Time:             strings.TrimSpace(req.Time),
		Visibility:       entity.Visibility(req.Visibility),
		Location:         optional(req.Location),
		Latitude:         optional(req.Latitude),
		Longitude:        optional(req.Longitude),
		ResourceURL:      optional(req.ResourceURL),
		ImageURL:         optional(req.ImageURL),
		CategoryID:       req.CategoryID,
		Status:           entity.EventStatusPending,
		Slug:             newSlug(req.Title),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	applyLocation(event, req.City, req.District, req.MapURL)

	created, err := s.events.CreateWithOrganizer(ctx, event, req.OrganizerID)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Ya existe un evento con ese identificador", err)
		}
		return nil, errors.NewAppError(errors.ErrCreateFailed, "No se pudo crear el evento", err)
	}

	logger.Info("EventService:CreateEvent:Created", "event_id", created.ID, "organizer_id", req.OrganizerID)
	return mapper.ToEventResponse(created), nil
}

// UpdateEvent lets the organizer change event details. Location changes
// rerun enrichment and regenerate the map link.
func (s *EventService) UpdateEvent(ctx context.Context, eventID, userID uuid.UUID, req *dto.UpdateEventRequest) (*dto.EventResponse, *errors.AppError) {
	if v := validator.ValidateUpdateEventRequest(req, s.today()); v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el evento", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Evento no encontrado", nil)
	}

	organizer, err := s.participations.GetOrganizer(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el evento", err)
	}
	if organizer == nil || organizer.UserID != userID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Solo el organizador puede editar el evento", nil)
	}

	if req.Title != nil {
		event.Title = strings.TrimSpace(*req.Title)
	}
	if req.ShortDescription != nil {
		event.ShortDescription = strings.TrimSpace(*req.ShortDescription)
	}
	if req.LongDescription != nil {
		event.LongDescription = optional(*req.LongDescription)
	}
	if req.Date != nil {
		date, err := validator.ParseDate(*req.Date, s.loc)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrInvalidInput, "La fecha del evento no es válida", err)
		}
		event.Date = date
	}
	if req.Time != nil {
		event.Time = strings.TrimSpace(*req.Time)
	}
	if req.ResourceURL != nil {
		event.ResourceURL = optional(*req.ResourceURL)
	}
	if req.ImageURL != nil {
		event.ImageURL = optional(*req.ImageURL)
	}
	if req.CategoryID != nil {
		event.CategoryID = req.CategoryID
	}

	if req.Location != nil || req.Latitude != nil || req.Longitude != nil || req.City != nil || req.District != nil || req.MapURL != nil {
		mapURL := suppliedMapURL(event)
		if req.Latitude != nil || req.Longitude != nil {
			mapURL = ""
		}
		if req.MapURL != nil {
			mapURL = *req.MapURL
		}
		if req.Location != nil {
			event.Location = optional(*req.Location)
		}
		if req.Latitude != nil {
			event.Latitude = optional(*req.Latitude)
		}
		if req.Longitude != nil {
			event.Longitude = optional(*req.Longitude)
		}
		city, district := deref(event.City), deref(event.District)
		if req.City != nil {
			city = *req.City
		}
		if req.District != nil {
			district = *req.District
		}
		// A changed free-text location must not keep a district inferred
		// from the old one.
		if req.Location != nil && req.District == nil {
			district = ""
			if req.City == nil {
				city = ""
			}
		}
		applyLocation(event, city, district, mapURL)
	}

	event.UpdatedAt = s.clock.Now()
	if err := s.events.Update(ctx, event); err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "No se pudo actualizar el evento", err)
	}
	return mapper.ToEventResponse(event), nil
}

// GetEventWithRole returns the event, its attendee count and the viewer's
// role. A nil viewer is anonymous and always resolves to nada.
func (s *EventService) GetEventWithRole(ctx context.Context, eventID, viewerID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError) {
	item, err := s.events.GetListItemByID(ctx, eventID)
	return s.withRole(ctx, item, err, viewerID)
}

func (s *EventService) GetEventBySlug(ctx context.Context, eventSlug string, viewerID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError) {
	item, err := s.events.GetListItemBySlug(ctx, eventSlug)
	return s.withRole(ctx, item, err, viewerID)
}

func (s *EventService) withRole(ctx context.Context, item *entity.EventListItem, err error, viewerID uuid.UUID) (*dto.EventDetailResponse, *errors.AppError) {
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el evento", err)
	}
	if item == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Evento no encontrado", nil)
	}

	role, err := s.ResolveRole(ctx, item.ID, viewerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el evento", err)
	}

	return &dto.EventDetailResponse{
		EventListItemResponse: mapper.ToEventListItemResponse(*item),
		Role:                  string(role),
	}, nil
}

// SetEventStatus moves an event to any status of the enumeration. The
// organizer is told when the event is approved or rejected.
func (s *EventService) SetEventStatus(ctx context.Context, eventID uuid.UUID, rawStatus string) (*dto.EventResponse, *errors.AppError) {
	status, v := validator.ValidateStatus(rawStatus)
	if v.HasError() {
		return nil, errors.NewAppError(errors.ErrInvalidInput, v.Message(), nil)
	}

	found, err := s.events.UpdateStatus(ctx, eventID, status)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "No se pudo actualizar el estado del evento", err)
	}
	if !found {
		return nil, errors.NewAppError(errors.ErrNotFound, "Evento no encontrado", nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil || event == nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el evento", err)
	}

	if status == entity.EventStatusActive || status == entity.EventStatusRejected {
		s.notifyOrganizer(ctx, event, notifEntity.TypeEventStatus,
			"Estado del evento actualizado",
			fmt.Sprintf("Tu evento %q ahora está %s.", event.Title, status))
	}

	return mapper.ToEventResponse(event), nil
}

// ListEvents returns active events of one visibility, newest first.
func (s *EventService) ListEvents(ctx context.Context, visibility entity.Visibility, filter entity.EventFilter) (*coreDto.Pagination[dto.EventListItemResponse], *errors.AppError) {
	filter.Visibility = visibility
	if filter.Status == "" {
		filter.Status = entity.EventStatusActive
	}

	page, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener los eventos", err)
	}
	return coreDto.MapPagination(page, mapper.ToEventListItemResponse), nil
}

// ExpirePastEvents marks active events dated before today as vencido.
func (s *EventService) ExpirePastEvents(ctx context.Context) (int64, error) {
	n, err := s.events.ExpireBefore(ctx, s.today())
	if err != nil {
		logger.Error("EventService:ExpirePastEvents:Error:", err)
		return 0, err
	}
	if n > 0 {
		logger.Info("EventService:ExpirePastEvents", "expired", n)
	}
	return n, nil
}

func (s *EventService) notifyOrganizer(ctx context.Context, event *entity.Event, kind notifEntity.NotificationType, title, message string) {
	if s.notifier == nil {
		return
	}
	organizer, err := s.participations.GetOrganizer(ctx, event.ID)
	if err != nil || organizer == nil {
		logger.Warn("EventService:NotifyOrganizer:NoOrganizer", "event_id", event.ID, "error", err)
		return
	}
	data := map[string]any{"evento_id": event.ID.String(), "slug": event.Slug}
	if err := s.notifier.Notify(ctx, organizer.UserID, kind, title, message, data); err != nil {
		logger.Error("EventService:NotifyOrganizer:Error:", "event_id", event.ID, "error", err)
	}
}

// applyLocation fills city and district from the free-text location and
// sets the map link. A caller supplied maps URL is kept as is.
func applyLocation(event *entity.Event, city, district, mapURL string) {
	text := deref(event.Location)
	var res location.Result
	if text != "" || strings.TrimSpace(city) != "" || strings.TrimSpace(district) != "" {
		res = location.Enrich(text, city, district)
	}
	event.City = optional(res.City)
	event.District = optional(res.District)

	if mapURL = strings.TrimSpace(mapURL); mapURL != "" && location.IsMapsURL(mapURL) {
		event.MapURL = &mapURL
		return
	}
	link, ok := location.Synthesize(location.Hint{
		Latitude:  deref(event.Latitude),
		Longitude: deref(event.Longitude),
		Address:   text,
		City:      res.City,
		District:  res.District,
	})
	if ok {
		event.MapURL = &link
	} else {
		event.MapURL = nil
	}
}

// suppliedMapURL returns the stored map link when the organizer provided it,
// and "" when it was synthesized from the location fields.
func suppliedMapURL(event *entity.Event) string {
	stored := deref(event.MapURL)
	if stored == "" {
		return ""
	}
	synthesized, _ := location.Synthesize(location.Hint{
		Latitude:  deref(event.Latitude),
		Longitude: deref(event.Longitude),
		Address:   deref(event.Location),
		City:      deref(event.City),
		District:  deref(event.District),
	})
	if stored == synthesized {
		return ""
	}
	return stored
}

func newSlug(title string) string {
	base := slug.Make(title)
	if base == "" {
		base = "evento"
	}
	if len(base) > 60 {
		base = strings.Trim(base[:60], "-")
	}
	return base + "-" + utils.GenerateID(slugSuffixLength)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
