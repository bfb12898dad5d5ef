package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/modules/invitation/dto"
	"myevent-api/modules/invitation/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type InvitationController struct {
	controller.BaseController
	service *service.InvitationService
}

func NewInvitationController(service *service.InvitationService) *InvitationController {
	return &InvitationController{
		BaseController: controller.NewBaseController(),
		service:        service,
	}
}

// GetPendingInvitations returns join requests addressed to the current user.
func (c *InvitationController) GetPendingInvitations(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	response, err := c.service.GetPendingInvitations(reqCtx, middleware.GetUserID(ctx))
	if err != nil {
		return c.HandleAppError(err)
	}
	return c.SuccessResponse(ctx, response, "Invitaciones pendientes obtenidas")
}

func (c *InvitationController) GetSentInvitations(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	response, err := c.service.GetSentInvitations(reqCtx, middleware.GetUserID(ctx))
	if err != nil {
		return c.HandleAppError(err)
	}
	return c.SuccessResponse(ctx, response, "Solicitudes obtenidas")
}

func (c *InvitationController) AcceptInvitation(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de invitación inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	resp, appErr := c.service.AcceptInvitation(reqCtx, id, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, resp, "Invitación aceptada")
}

func (c *InvitationController) DeclineInvitation(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de invitación inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	resp, appErr := c.service.DeclineInvitation(reqCtx, id, middleware.GetUserID(ctx))
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, resp, "Invitación rechazada")
}

func (c *InvitationController) CountPending(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	count, err := c.service.CountPending(reqCtx, middleware.GetUserID(ctx))
	if err != nil {
		return c.HandleAppError(err)
	}
	return c.SuccessResponse(ctx, dto.CountResponse{Count: count}, "Conteo obtenido")
}
