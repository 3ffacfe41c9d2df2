package profile

import (
	"ella-rises-admin/core/cache"
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/profile/controller"
	"ella-rises-admin/modules/profile/repository"
	"ella-rises-admin/modules/profile/router"
	"ella-rises-admin/modules/profile/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the profile module and registers routes
func Init(e *echo.Echo, db database.Database, store cache.Cache, mw *middleware.Middleware) {
	repo := repository.NewProfileRepository(&db)
	svc := service.NewProfileService(repo, store)
	ctrl := controller.NewProfileController(svc)

	router.NewProfileRouter(ctrl).Setup(e, mw)
}
