package event

import (
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/core/storage"
	"myevent-api/modules/event/controller"
	"myevent-api/modules/event/repository"
	"myevent-api/modules/event/router"
	"myevent-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Invitations service.InvitationStore
	Notifier    service.Notifier
	Uploader    storage.Uploader
	Clock       clock.Clock
	Options     service.Options
}

// Init wires the event module and returns its service for the scheduler.
func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, deps Deps) *service.EventService {
	events := repository.NewEventRepository(db)
	participations := repository.NewParticipationRepository(db)
	svc := service.NewEventService(events, participations, deps.Invitations, deps.Notifier, deps.Clock, deps.Options)
	ctrl := controller.NewEventController(svc, deps.Uploader, deps.Options.Location)

	router.NewEventRouter(ctrl).Register(g, mw)

	return svc
}
