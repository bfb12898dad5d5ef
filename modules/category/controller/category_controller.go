package controller

import (
	"context"

	"myevent-api/core/constants"
	"myevent-api/core/controller"
	"myevent-api/core/errors"
	"myevent-api/modules/category/dto"
	"myevent-api/modules/category/service"

	"github.com/labstack/echo/v4"
)

type CategoryController struct {
	service *service.CategoryService
	controller.BaseController
}

func NewCategoryController(service *service.CategoryService) *CategoryController {
	return &CategoryController{
		service:        service,
		BaseController: controller.NewBaseController(),
	}
}

func (c *CategoryController) GetCategories(ctx echo.Context) error {
	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	categories, appErr := c.service.GetCategories(reqCtx)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.SuccessResponse(ctx, categories, "Categorías obtenidas exitosamente")
}

func (c *CategoryController) CreateCategory(ctx echo.Context) error {
	req := new(dto.CreateCategoryRequest)
	if err := ctx.Bind(req); err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Datos de solicitud inválidos", nil)
	}

	reqCtx, cancel := context.WithTimeout(ctx.Request().Context(), constants.DefaultRequestTimeout)
	defer cancel()

	category, appErr := c.service.CreateCategory(reqCtx, req)
	if appErr != nil {
		return c.HandleAppError(appErr)
	}
	return c.CreatedResponse(ctx, category, "Categoría creada exitosamente")
}
