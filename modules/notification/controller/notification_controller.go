package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/core/params"
	"myevent-api/modules/notification/dto"
	"myevent-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

type NotificationController struct {
	service *service.NotificationService
	controller.BaseController
}

func NewNotificationController(service *service.NotificationService) *NotificationController {
	return &NotificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

// GetMyNotifications lists the caller's notifications, newest first.
func (c *NotificationController) GetMyNotifications(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	queryParams := params.NewQueryParams(ctx)
	result, err := c.service.GetMyNotifications(reqCtx, middleware.GetUserID(ctx), *queryParams)
	if err != nil {
		return c.HandleAppError(err)
	}

	return c.SuccessResponse(ctx, result, "Notificaciones obtenidas exitosamente")
}

// MarkAsRead marks the listed notifications as read. An empty body marks all.
func (c *NotificationController) MarkAsRead(ctx echo.Context) error {
	req := new(dto.MarkAsReadRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	updated, err := c.service.MarkAsRead(reqCtx, middleware.GetUserID(ctx), req.IDs)
	if err != nil {
		return c.HandleAppError(err)
	}

	return c.SuccessResponse(ctx, map[string]int64{"actualizadas": updated}, "Notificaciones marcadas como leídas")
}

func (c *NotificationController) CountUnread(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	count, err := c.service.CountUnread(reqCtx, middleware.GetUserID(ctx))
	if err != nil {
		return c.HandleAppError(err)
	}

	return c.SuccessResponse(ctx, dto.UnreadCountResponse{Count: count}, "Conteo obtenido exitosamente")
}
