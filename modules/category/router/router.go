package router

import (
	"myevent-api/core/constants"
	"myevent-api/core/middleware"
	"myevent-api/modules/category/controller"

	"github.com/labstack/echo/v4"
)

type CategoryRouter struct {
	controller *controller.CategoryController
}

func NewCategoryRouter(controller *controller.CategoryController) *CategoryRouter {
	return &CategoryRouter{controller: controller}
}

func (r *CategoryRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	g.GET("/categorias", r.controller.GetCategories)
	g.POST("/categorias", r.controller.CreateCategory, mw.AuthMiddleware(), mw.RequireRole(constants.RoleAdmin))
}
