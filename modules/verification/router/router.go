package router

import (
	"myevent-api/modules/verification/controller"

	"github.com/labstack/echo/v4"
)

type VerificationRouter struct {
	controller *controller.VerificationController
}

func NewVerificationRouter(controller *controller.VerificationController) *VerificationRouter {
	return &VerificationRouter{controller: controller}
}

func (r *VerificationRouter) Register(g *echo.Group) {
	g.POST("/enviar-codigo", r.controller.SendCode)
	g.POST("/verificar-codigo", r.controller.VerifyCode)
}
