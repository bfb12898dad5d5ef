package service

import (
	"context"

	"myevent-api/modules/event/entity"
	invEntity "myevent-api/modules/invitation/entity"

	"github.com/google/uuid"
)

// ResolveRole computes the user's relationship to the event from stored
// participations and invitations. It is evaluated on every read.
func (s *EventService) ResolveRole(ctx context.Context, eventID, userID uuid.UUID) (entity.ViewerRole, error) {
	if userID == uuid.Nil {
		return entity.ViewerNone, nil
	}

	participations, err := s.participations.GetByEventAndUser(ctx, eventID, userID)
	if err != nil {
		return "", err
	}
	if len(participations) > 0 {
		switch participations[0].Role {
		case entity.RoleOrganizer:
			return entity.ViewerOrganizer, nil
		case entity.RoleAttendee:
			return entity.ViewerAttendee, nil
		default:
			return entity.ViewerNone, nil
		}
	}

	invitation, err := s.invitations.GetLatestByEventAndInvitee(ctx, eventID, userID)
	if err != nil {
		return "", err
	}
	if invitation == nil {
		return entity.ViewerNone, nil
	}

	switch invitation.Status {
	case invEntity.StatusPending:
		return entity.ViewerPendingAttendance, nil
	case invEntity.StatusAccepted:
		return entity.ViewerAttendee, nil
	default:
		return entity.ViewerNone, nil
	}
}
