package user

import (
	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/user/controller"
	"ella-rises-admin/modules/user/repository"
	"ella-rises-admin/modules/user/router"
	"ella-rises-admin/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the user management module and registers routes
func Init(e *echo.Echo, db database.Database, store cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewUserRepository(&db)
	svc := service.NewUserService(repo, store)
	ctrl := controller.NewUserController(svc)

	router.NewUserRouter(ctrl).Setup(e, mw)
}
