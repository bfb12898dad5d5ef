package service

import (
	"context"
	"fmt"

	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/modules/event/dto"
	"myevent-api/modules/event/entity"
	"myevent-api/modules/event/mapper"
	"myevent-api/modules/event/repository"
	invEntity "myevent-api/modules/invitation/entity"
	notifEntity "myevent-api/modules/notification/entity"

	"github.com/google/uuid"
)

const (
	MsgJoinedEvent       = "El usuario se ha unido al evento exitosamente."
	MsgInvitationSent    = "Invitación enviada al organizador del evento, favor de estar atento a sus notificaciones."
	MsgAttendanceRemoved = "La asistencia ha sido anulada exitosamente."
)

// AttendanceResult describes the outcome of a join request. Pending is true
// when the request now waits on the organizer.
type AttendanceResult struct {
	Message string
	Pending bool
}

// RequestAttendance joins a public event directly and turns a request on a
// private event into a pending invitation for the organizer.
func (s *EventService) RequestAttendance(ctx context.Context, eventID, userID uuid.UUID) (*AttendanceResult, *errors.AppError) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "evento_id y usuario_id son obligatorios.", nil)
	}

	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	if event == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "El evento no existe.", nil)
	}

	existing, err := s.participations.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	if len(existing) > 0 {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "El usuario ya participa en el evento.", nil)
	}

	switch event.Visibility {
	case entity.VisibilityPublic:
		return s.joinPublic(ctx, eventID, userID)
	case entity.VisibilityPrivate:
		return s.requestInvitation(ctx, event, userID)
	default:
		return nil, errors.NewAppError(errors.ErrInvalidInput, "El tipo de evento no es válido.", nil)
	}
}

func (s *EventService) joinPublic(ctx context.Context, eventID, userID uuid.UUID) (*AttendanceResult, *errors.AppError) {
	p := &entity.Participation{
		EventID:      eventID,
		UserID:       userID,
		Role:         entity.RoleAttendee,
		RegisteredAt: s.clock.Now(),
	}
	if err := s.participations.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "El usuario ya participa en el evento.", err)
		}
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	return &AttendanceResult{Message: MsgJoinedEvent}, nil
}

func (s *EventService) requestInvitation(ctx context.Context, event *entity.Event, userID uuid.UUID) (*AttendanceResult, *errors.AppError) {
	organizer, err := s.participations.GetOrganizer(ctx, event.ID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	if organizer == nil {
		logger.Error("EventService:RequestAttendance:MissingOrganizer", "event_id", event.ID)
		return nil, errors.NewAppError(errors.ErrInternalServer, "No se encontró un organizador para este evento.", nil)
	}

	latest, err := s.invitations.GetLatestByEventAndInvitee(ctx, event.ID, userID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	if latest != nil {
		switch latest.Status {
		case invEntity.StatusPending:
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Ya existe una solicitud pendiente para este evento.", nil)
		case invEntity.StatusAccepted:
			return nil, errors.NewAppError(errors.ErrAlreadyExists, "Tu solicitud ya fue aceptada para este evento.", nil)
		}
	}

	invitation := &invEntity.Invitation{
		EventID:     event.ID,
		OrganizerID: organizer.UserID,
		InviteeID:   userID,
		Status:      invEntity.StatusPending,
		Message:     invEntity.DefaultRequestMessage,
		InvitedAt:   s.clock.Now(),
	}
	if err := s.invitations.Create(ctx, invitation); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}

	if s.notifier != nil {
		data := map[string]any{
			"invitacion_id": invitation.ID.String(),
			"evento_id":     event.ID.String(),
			"usuario_id":    userID.String(),
		}
		msg := fmt.Sprintf("Tienes una nueva solicitud para asistir a %q.", event.Title)
		if err := s.notifier.Notify(ctx, organizer.UserID, notifEntity.TypeAttendanceRequest, "Nueva solicitud de asistencia", msg, data); err != nil {
			logger.Error("EventService:RequestAttendance:Notify:Error:", "event_id", event.ID, "error", err)
		}
	}

	return &AttendanceResult{Message: MsgInvitationSent, Pending: true}, nil
}

// CancelAttendance removes the user's participation. Organizers cannot
// leave their own event.
func (s *EventService) CancelAttendance(ctx context.Context, eventID, userID uuid.UUID) (string, *errors.AppError) {
	if eventID == uuid.Nil || userID == uuid.Nil {
		return "", errors.NewAppError(errors.ErrInvalidInput, "evento_id y usuario_id son obligatorios.", nil)
	}

	participations, err := s.participations.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	if len(participations) == 0 {
		return "", errors.NewAppError(errors.ErrNotFound, "El usuario no está inscrito en este evento.", nil)
	}

	for _, p := range participations {
		if p.Role == entity.RoleOrganizer {
			return "", errors.NewAppError(errors.ErrForbidden, "El organizador no puede anular su asistencia.", nil)
		}
	}

	if err := s.participations.Delete(ctx, participations[0].ID); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Error interno del servidor.", err)
	}
	return MsgAttendanceRemoved, nil
}

// MyAttendedEvents lists events the user attends, in any status.
func (s *EventService) MyAttendedEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventListItemResponse, *errors.AppError) {
	items, err := s.events.ListByParticipant(ctx, userID, []entity.ParticipationRole{entity.RoleAttendee}, "")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener los eventos", err)
	}
	return mapper.ToEventListItemResponses(items), nil
}

// MyCreatedEvents lists events the user organizes, in any status.
func (s *EventService) MyCreatedEvents(ctx context.Context, userID uuid.UUID) ([]dto.EventListItemResponse, *errors.AppError) {
	items, err := s.events.ListByParticipant(ctx, userID, []entity.ParticipationRole{entity.RoleOrganizer}, "")
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener los eventos", err)
	}
	return mapper.ToEventListItemResponses(items), nil
}

// Summary collects the user's active created, attending and saved events.
func (s *EventService) Summary(ctx context.Context, userID uuid.UUID) (*dto.SummaryResponse, *errors.AppError) {
	var (
		summary entity.Summary
		err     error
	)

	summary.Created, err = s.events.ListByParticipant(ctx, userID,
		[]entity.ParticipationRole{entity.RoleOrganizer}, entity.EventStatusActive)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el resumen", err)
	}

	summary.Attending, err = s.events.ListByParticipant(ctx, userID,
		[]entity.ParticipationRole{entity.RoleAttendee, entity.RoleCoOrganizer}, entity.EventStatusActive)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el resumen", err)
	}

	summary.Saved, err = s.events.ListSavedBy(ctx, userID, entity.EventStatusActive)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener el resumen", err)
	}

	return mapper.ToSummaryResponse(&summary), nil
}
