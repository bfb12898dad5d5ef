package router

import (
	"myevent-api/core/constants"
	"myevent-api/core/middleware"
	"myevent-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	controller *controller.EventController
}

func NewEventRouter(controller *controller.EventController) *EventRouter {
	return &EventRouter{controller: controller}
}

func (r *EventRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()
	admin := mw.RequireRole(constants.RoleAdmin)

	g.GET("/eventos/publicos", r.controller.ListPublic)
	g.GET("/eventos/privados", r.controller.ListPrivate, auth)
	g.GET("/eventos/slug/:slug", r.controller.GetEventBySlug, mw.OptionalAuth())
	g.POST("/eventos/upload-imagen", r.controller.UploadImage, auth)
	g.POST("/eventos/upload-recurso", r.controller.UploadResource, auth)

	g.POST("/eventos", r.controller.CreateEvent, auth)
	g.GET("/eventos/:id", r.controller.GetEvent, mw.OptionalAuth())
	g.PUT("/eventos/:id", r.controller.UpdateEvent, auth)
	g.PUT("/eventos/:id/estado", r.controller.UpdateStatus, auth, admin)

	g.POST("/asistenciaEvento", r.controller.RequestAttendance, auth)
	g.POST("/anularAsistencia", r.controller.CancelAttendance, auth)
	g.GET("/mis-asistencias", r.controller.MyAttendedEvents, auth)
	g.GET("/mis-eventos-creados", r.controller.MyCreatedEvents, auth)
	g.GET("/resumen", r.controller.Summary, auth)

	g.GET("/ubicaciones/distritos", r.controller.Districts)
}
