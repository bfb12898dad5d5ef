package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/modules/savedevent/dto"
	"myevent-api/modules/savedevent/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type SavedEventController struct {
	service *service.SavedEventService
	controller.BaseController
}

func NewSavedEventController(service *service.SavedEventService) *SavedEventController {
	return &SavedEventController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func (c *SavedEventController) Save(ctx echo.Context) error {
	req := new(dto.SaveEventRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	saved, appErr := c.service.Save(reqCtx, middleware.GetUserID(ctx), req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.CreatedResponse(ctx, saved, "Evento guardado exitosamente")
}

func (c *SavedEventController) Remove(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("eventId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := c.service.Remove(reqCtx, middleware.GetUserID(ctx), eventID); appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, nil, "Evento eliminado de guardados")
}

func (c *SavedEventController) List(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	events, appErr := c.service.List(reqCtx, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, events, "Eventos guardados obtenidos exitosamente")
}
