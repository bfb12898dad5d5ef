package router

import (
	"myevent-api/core/middleware"
	"myevent-api/modules/invitation/controller"

	"github.com/labstack/echo/v4"
)

type InvitationRouter struct {
	controller *controller.InvitationController
}

func NewInvitationRouter(controller *controller.InvitationController) *InvitationRouter {
	return &InvitationRouter{
		controller: controller,
	}
}

func (r *InvitationRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	invitations := g.Group("/invitaciones")
	invitations.Use(mw.AuthMiddleware())

	invitations.GET("", r.controller.GetPendingInvitations)
	invitations.GET("/count", r.controller.CountPending)
	invitations.GET("/enviadas", r.controller.GetSentInvitations)
	invitations.POST("/:id/aceptar", r.controller.AcceptInvitation)
	invitations.POST("/:id/rechazar", r.controller.DeclineInvitation)
}
