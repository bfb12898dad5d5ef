package user

import (
	"myevent-api/core/cache"
	"myevent-api/core/clock"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/core/storage"
	"myevent-api/core/utils"
	"myevent-api/modules/user/controller"
	"myevent-api/modules/user/repository"
	"myevent-api/modules/user/router"
	"myevent-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

type Deps struct {
	Tokens       *utils.TokenManager
	Cache        cache.Cache
	Uploader     storage.Uploader
	Clock        clock.Clock
	SecureCookie bool
}

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, deps Deps) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, deps.Tokens, deps.Cache, deps.Uploader, deps.Clock)
	ctrl := controller.NewUserController(svc, deps.SecureCookie)

	router.NewUserRouter(ctrl).Register(g, mw)
}
