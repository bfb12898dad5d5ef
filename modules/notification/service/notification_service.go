package service

import (
	"context"

	"myevent-api/core/clock"
	coreDto "myevent-api/core/dto"
	coreEntity "myevent-api/core/entity"
	"myevent-api/core/errors"
	"myevent-api/core/logger"
	"myevent-api/core/params"
	"myevent-api/modules/notification/dto"
	"myevent-api/modules/notification/entity"
	"myevent-api/modules/notification/mapper"
	"myevent-api/modules/notification/repository"

	"github.com/google/uuid"
)

type NotificationService struct {
	repo  repository.NotificationRepositoryInterface
	clock clock.Clock
}

func NewNotificationService(repo repository.NotificationRepositoryInterface, clk clock.Clock) *NotificationService {
	if clk == nil {
		clk = clock.New()
	}
	return &NotificationService{repo: repo, clock: clk}
}

// Notify stores an unread notification for userID. Other modules depend on
// this method through their own narrow interfaces.
func (s *NotificationService) Notify(ctx context.Context, userID uuid.UUID, kind entity.NotificationType, title, message string, data map[string]any) error {
	notif := &entity.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Data:    entity.JSONB(data),
		BaseEntity: coreEntity.BaseEntity{
			CreatedAt: s.clock.Now(),
		},
	}
	if err := s.repo.Create(ctx, notif); err != nil {
		logger.Error("NotificationService:Notify:Error:", "user_id", userID, "type", kind, "error", err)
		return err
	}
	return nil
}

func (s *NotificationService) GetMyNotifications(ctx context.Context, userID uuid.UUID, queryParams params.QueryParams) (*coreDto.Pagination[dto.NotificationResponse], *errors.AppError) {
	page, err := s.repo.GetByUserID(ctx, userID, queryParams)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrGetFailed, "No se pudieron obtener las notificaciones", err)
	}
	return coreDto.MapPagination(page, mapper.ToNotificationResponse), nil
}

// MarkAsRead marks the given notifications read, or all of them when ids is
// empty. Notifications belonging to other users are left untouched.
func (s *NotificationService) MarkAsRead(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) (int64, *errors.AppError) {
	var (
		n   int64
		err error
	)
	if len(ids) == 0 {
		n, err = s.repo.MarkAllAsRead(ctx, userID)
	} else {
		n, err = s.repo.MarkAsRead(ctx, userID, ids)
	}
	if err != nil {
		return 0, errors.NewAppError(errors.ErrUpdateFailed, "No se pudieron actualizar las notificaciones", err)
	}
	return n, nil
}

func (s *NotificationService) CountUnread(ctx context.Context, userID uuid.UUID) (int, *errors.AppError) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrGetFailed, "No se pudo contar las notificaciones", err)
	}
	return count, nil
}
