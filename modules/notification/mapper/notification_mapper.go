package mapper

import (
	"myevent-api/modules/notification/dto"
	"myevent-api/modules/notification/entity"
)

func ToNotificationResponse(n entity.Notification) dto.NotificationResponse {
	return dto.NotificationResponse{
		ID:        n.ID,
		Type:      string(n.Type),
		Title:     n.Title,
		Message:   n.Message,
		Data:      n.Data,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}
