package auth

import (
	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/auth/controller"
	"ella-rises-admin/modules/auth/repository"
	"ella-rises-admin/modules/auth/router"
	"ella-rises-admin/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the auth module and registers routes
func Init(e *echo.Echo, db database.Database, cache cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewAuthRepository(&db)
	svc := service.NewAuthService(repo, cache)
	ctrl := controller.NewAuthController(svc)

	router.NewAuthRouter(ctrl).Setup(e, mw)
}
