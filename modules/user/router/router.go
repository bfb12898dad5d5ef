package router

import (
	"myevent-api/core/middleware"
	"myevent-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	controller *controller.UserController
}

func NewUserRouter(controller *controller.UserController) *UserRouter {
	return &UserRouter{controller: controller}
}

func (r *UserRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()

	g.POST("/usuarios/registro", r.controller.Register)
	g.POST("/login", r.controller.Login)
	g.GET("/check-status", r.controller.CheckStatus, mw.OptionalAuth())
	g.GET("/usuario/:id", r.controller.GetPublicUser)

	g.POST("/logout", r.controller.Logout, auth)
	g.GET("/perfil", r.controller.GetProfile, auth)
	g.PUT("/perfil", r.controller.UpdateProfile, auth)
	g.POST("/perfil/foto", r.controller.UploadPhoto, auth)
	g.DELETE("/perfil/foto", r.controller.DeletePhoto, auth)
	g.DELETE("/eliminar-cuenta", r.controller.DeleteAccount, auth)
}
