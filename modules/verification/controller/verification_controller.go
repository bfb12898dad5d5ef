package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/modules/verification/dto"
	"myevent-api/modules/verification/service"

	"github.com/labstack/echo/v4"
)

type VerificationController struct {
	service *service.VerificationService
	controller.BaseController
}

func NewVerificationController(service *service.VerificationService) *VerificationController {
	return &VerificationController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func (c *VerificationController) SendCode(ctx echo.Context) error {
	req := new(dto.SendCodeRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	resp, appErr := c.service.SendCode(reqCtx, req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, resp, "Código enviado")
}

func (c *VerificationController) VerifyCode(ctx echo.Context) error {
	req := new(dto.VerifyCodeRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	if appErr := c.service.VerifyCode(reqCtx, req); appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, nil, "Código verificado")
}
