package category

import (
	"myevent-api/core/cache"
	"myevent-api/core/database"
	"myevent-api/core/middleware"
	"myevent-api/modules/category/controller"
	"myevent-api/modules/category/repository"
	"myevent-api/modules/category/router"
	"myevent-api/modules/category/service"

	"github.com/labstack/echo/v4"
)

func Init(g *echo.Group, db database.Database, mw *middleware.Middleware, c cache.Cache) {
	repo := repository.NewCategoryRepository(db)
	svc := service.NewCategoryService(repo, c)
	ctrl := controller.NewCategoryController(svc)

	router.NewCategoryRouter(ctrl).Register(g, mw)
}
