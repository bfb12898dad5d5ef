package service

import (
	"context"
	"fmt"

	"myevent-api/core/clock"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/modules/invitation/dto"
	"myevent-api/modules/invitation/entity"
	"myevent-api/modules/invitation/mapper"
	"myevent-api/modules/invitation/repository"
	notifEntity "myevent-api/modules/notification/entity"

	"github.com/google/uuid"
)

// Notifier delivers in-app notifications.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind notifEntity.NotificationType, title, message string, data map[string]any) error
}

type InvitationService struct {
	repo     repository.InvitationRepositoryInterface
	notifier Notifier
	clock    clock.Clock
}

func NewInvitationService(repo repository.InvitationRepositoryInterface, notifier Notifier, clk clock.Clock) *InvitationService {
	if clk == nil {
		clk = clock.New()
	}
	return &InvitationService{
		repo:     repo,
		notifier: notifier,
		clock:    clk,
	}
}

// GetPendingInvitations lists join requests waiting on the organizer.
func (s *InvitationService) GetPendingInvitations(ctx context.Context, organizerID uuid.UUID) (*dto.InvitationListResponse, *errors.AppError) {
	items, err := s.repo.GetPendingByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener las invitaciones", err)
	}
	return mapper.ToInvitationListResponse(items), nil
}

// GetSentInvitations lists the join requests the user has made, in any status.
func (s *InvitationService) GetSentInvitations(ctx context.Context, inviteeID uuid.UUID) (*dto.InvitationListResponse, *errors.AppError) {
	items, err := s.repo.GetByInviteeID(ctx, inviteeID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener las solicitudes", err)
	}
	return mapper.ToInvitationListResponse(items), nil
}

func (s *InvitationService) CountPending(ctx context.Context, organizerID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountPendingByOrganizerID(ctx, organizerID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "No se pudo contar las invitaciones", err)
	}
	return count, nil
}

func (s *InvitationService) AcceptInvitation(ctx context.Context, id, organizerID uuid.UUID) (*dto.InvitationResponse, *errors.AppError) {
	return s.decide(ctx, id, organizerID, entity.StatusAccepted)
}

func (s *InvitationService) DeclineInvitation(ctx context.Context, id, organizerID uuid.UUID) (*dto.InvitationResponse, *errors.AppError) {
	return s.decide(ctx, id, organizerID, entity.StatusDeclined)
}

// decide applies the organizer's answer. Accepting does not create a
// participation; the invitation itself grants the attendee role.
func (s *InvitationService) decide(ctx context.Context, id, organizerID uuid.UUID, to entity.InvitationStatus) (*dto.InvitationResponse, *errors.AppError) {
	invitation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudo obtener la invitación", err)
	}
	if invitation == nil {
		return nil, errors.NewAppError(errors.ErrNotFound, "Invitación no encontrada", nil)
	}
	if invitation.OrganizerID != organizerID {
		return nil, errors.NewAppError(errors.ErrForbidden, "Solo el organizador puede responder esta invitación", nil)
	}
	if invitation.Status != entity.StatusPending {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "La invitación ya fue respondida", nil)
	}

	now := s.clock.Now()
	updated, err := s.repo.UpdateStatus(ctx, id, entity.StatusPending, to, now)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrUpdateFailed, "No se pudo actualizar la invitación", err)
	}
	if !updated {
		return nil, errors.NewAppError(errors.ErrAlreadyExists, "La invitación ya fue respondida", nil)
	}

	invitation.Status = to
	invitation.RespondedAt = &now
	invitation.UpdatedAt = now

	s.notifyInvitee(ctx, invitation)

	resp := mapper.ToInvitationResponse(*invitation)
	return &resp, nil
}

func (s *InvitationService) notifyInvitee(ctx context.Context, invitation *entity.InvitationDetail) {
	if s.notifier == nil {
		return
	}

	kind := notifEntity.TypeInvitationAccepted
	title := "Solicitud aceptada"
	message := fmt.Sprintf("Tu solicitud para asistir a %q fue aceptada.", invitation.EventTitle)
	if invitation.Status == entity.StatusDeclined {
		kind = notifEntity.TypeInvitationDeclined
		title = "Solicitud rechazada"
		message = fmt.Sprintf("Tu solicitud para asistir a %q fue rechazada.", invitation.EventTitle)
	}

	data := map[string]any{
		"invitacion_id": invitation.ID.String(),
		"evento_id":     invitation.EventID.String(),
		"evento_slug":   invitation.EventSlug,
	}
	if err := s.notifier.Notify(ctx, invitation.InviteeID, kind, title, message, data); err != nil {
		logger.Error("InvitationService:NotifyInvitee:Error:", "invitation_id", invitation.ID, "error", err)
	}
}
