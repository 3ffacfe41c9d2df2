package event

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/event/controller"
	"ella-rises-admin/modules/event/repository"
	"ella-rises-admin/modules/event/router"
	"ella-rises-admin/modules/event/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the event module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(&db)
	svc := service.NewEventService(repo)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Setup(e, mw)
}
