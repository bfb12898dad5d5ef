package router

import (
	"myevent-api/core/middleware"
	"myevent-api/modules/savedevent/controller"

	"github.com/labstack/echo/v4"
)

type SavedEventRouter struct {
	controller *controller.SavedEventController
}

func NewSavedEventRouter(controller *controller.SavedEventController) *SavedEventRouter {
	return &SavedEventRouter{controller: controller}
}

func (r *SavedEventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()

	g.POST("/guardarEvento", r.controller.Save, auth)
	g.GET("/eventos-guardados", r.controller.List, auth)
	g.DELETE("/eventos-guardados/:eventId", r.controller.Remove, auth)
}
