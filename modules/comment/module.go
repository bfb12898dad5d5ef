package comment

import (
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/modules/comment/controller"
	"myevent-api/modules/comment/repository"
	"myevent-api/modules/comment/router"
	"myevent-api/modules/comment/service"
	eventRepository "myevent-api/modules/event/repository"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, clk clock.Clock) {
	repo := repository.NewCommentRepository(db)
	svc := service.NewCommentService(repo, eventRepository.NewEventRepository(db), clk)
	ctrl := controller.NewCommentController(svc)

	router.NewCommentRouter(ctrl).Register(g, mw)
}
