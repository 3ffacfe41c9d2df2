package milestone

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/milestone/controller"
	"ella-rises-admin/modules/milestone/repository"
	"ella-rises-admin/modules/milestone/router"
	"ella-rises-admin/modules/milestone/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the milestone module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewMilestoneRepository(&db)
	svc := service.NewMilestoneService(repo)
	ctrl := controller.NewMilestoneController(svc)

	router.NewMilestoneRouter(ctrl).Setup(e, mw)
}
