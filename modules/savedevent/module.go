package savedevent

import (
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	eventRepository "myevent-api/modules/event/repository"
	"myevent-api/modules/savedevent/controller"
	"myevent-api/modules/savedevent/repository"
	"myevent-api/modules/savedevent/router"
	"myevent-api/modules/savedevent/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, clk clock.Clock) {
	repo := repository.NewSavedEventRepository(db)
	events := eventRepository.NewEventRepository(db)
	svc := service.NewSavedEventService(repo, events, clk)
	ctrl := controller.NewSavedEventController(svc)

	router.NewSavedEventRouter(ctrl).Register(g, mw)
}
