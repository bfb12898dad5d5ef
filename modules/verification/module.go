package verification

import (
	"myevent-api/core/cache"
	"myevent-api/core/worker"
	"myevent-api/modules/verification/controller"
	"myevent-api/modules/verification/router"
	"myevent-api/modules/verification/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, c cache.Cache, enqueuer worker.Enqueuer) {
	svc := service.NewVerificationService(c, enqueuer)
	ctrl := controller.NewVerificationController(svc)

	router.NewVerificationRouter(ctrl).Register(g)
}
