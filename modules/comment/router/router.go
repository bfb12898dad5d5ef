package router

import (
	"myevent-api/core/middleware"
	"myevent-api/modules/comment/controller"

	"github.com/labstack/echo/v4"
)

type CommentRouter struct {
	controller *controller.CommentController
}

func NewCommentRouter(controller *controller.CommentController) *CommentRouter {
	return &CommentRouter{controller: controller}
}

func (r *CommentRouter) Register(g *echo.Group, mw *middleware.Middleware) {
	auth := mw.AuthMiddleware()

	g.GET("/eventos/:id/comentarios", r.controller.GetEventComments)
	g.POST("/eventos/:id/comentarios", r.controller.CreateComment, auth)
	g.POST("/comentarios/:id/like", r.controller.Like, auth)
	g.POST("/comentarios/:id/dislike", r.controller.Dislike, auth)
}
