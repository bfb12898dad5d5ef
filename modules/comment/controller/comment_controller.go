package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/core/middleware"
	"myevent-api/core/params"
	"myevent-api/modules/comment/dto"
	"myevent-api/modules/comment/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CommentController struct {
	service *service.CommentService
	controller.BaseController
}

func NewCommentController(service *service.CommentService) *CommentController {
	return &CommentController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func (c *CommentController) CreateComment(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}
	req := new(dto.CreateCommentRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	comment, appErr := c.service.CreateComment(reqCtx, eventID, middleware.GetUserID(ctx), req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.CreatedResponse(ctx, comment, "Comentario creado exitosamente")
}

func (c *CommentController) GetEventComments(ctx echo.Context) error {
	eventID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de evento inválido", nil)
	}
	queryParams := params.NewQueryParams(ctx)

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	comments, appErr := c.service.GetEventComments(reqCtx, eventID, *queryParams)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, comments, "Comentarios obtenidos exitosamente")
}

func (c *CommentController) Like(ctx echo.Context) error {
	return c.react(ctx, c.service.Like)
}

func (c *CommentController) Dislike(ctx echo.Context) error {
	return c.react(ctx, c.service.Dislike)
}

func (c *CommentController) react(ctx echo.Context, fn func(context.Context, uuid.UUID) (*dto.ReactionResponse, *errors.AppError)) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "ID de comentario inválido", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	resp, appErr := fn(reqCtx, id)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, resp, "Reacción registrada")
}
