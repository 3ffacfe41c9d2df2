package dashboard

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/dashboard/controller"
	"ella-rises-admin/modules/dashboard/repository"
	"ella-rises-admin/modules/dashboard/router"
	"ella-rises-admin/modules/dashboard/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the dashboard module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewDashboardRepository(&db)
	svc := service.NewDashboardService(repo)
	ctrl := controller.NewDashboardController(svc)

	router.NewDashboardRouter(ctrl).Setup(e, mw)
}
