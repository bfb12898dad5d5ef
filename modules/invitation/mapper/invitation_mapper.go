package mapper

import (
	"myevent-api/modules/invitation/dto"
	"myevent-api/modules/invitation/entity"
)

func ToInvitationResponse(d entity.InvitationDetail) dto.InvitationResponse {
	return dto.InvitationResponse{
		ID:          d.ID,
		EventID:     d.EventID,
		EventTitle:  d.EventTitle,
		EventSlug:   d.EventSlug,
		OrganizerID: d.OrganizerID,
		Invitee: dto.InviteeResponse{
			ID:       d.InviteeID,
			Name:     d.InviteeName,
			Nickname: d.InviteeNickname,
			ImageURL: d.InviteeImageURL,
		},
		Status:      string(d.Status),
		Message:     d.Message,
		InvitedAt:   d.InvitedAt,
		RespondedAt: d.RespondedAt,
	}
}

func ToInvitationListResponse(items []entity.InvitationDetail) *dto.InvitationListResponse {
	out := make([]dto.InvitationResponse, 0, len(items))
	for _, item := range items {
		out = append(out, ToInvitationResponse(item))
	}
	return &dto.InvitationListResponse{Invitations: out, Total: len(out)}
}
