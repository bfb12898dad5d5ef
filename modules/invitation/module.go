package invitation

import (
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/modules/invitation/controller"
	"myevent-api/modules/invitation/repository"
	"myevent-api/modules/invitation/router"
	"myevent-api/modules/invitation/service"

	"github.com/labstack/echo/v4"
)

// Init wires the invitation module and returns its repository, which the
// event module uses to raise join requests.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, notifier service.Notifier, clk clock.Clock) *repository.InvitationRepository {
	repo := repository.NewInvitationRepository(db)
	svc := service.NewInvitationService(repo, notifier, clk)
	ctrl := controller.NewInvitationController(svc)
	r := router.NewInvitationRouter(ctrl)

	r.Register(g, mw)

	return repo
}
