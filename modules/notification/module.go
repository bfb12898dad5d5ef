package notification

import (
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/modules/notification/controller"
	"myevent-api/modules/notification/repository"
	"myevent-api/modules/notification/router"
	"myevent-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.Database, mw *middleware.Middleware, clk clock.Clock) *service.NotificationService {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo, clk)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
