package participant

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/participant/controller"
	"ella-rises-admin/modules/participant/repository"
	"ella-rises-admin/modules/participant/router"
	"ella-rises-admin/modules/participant/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the participant module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewParticipantRepository(&db)
	svc := service.NewParticipantService(repo)
	ctrl := controller.NewParticipantController(svc)

	router.NewParticipantRouter(ctrl).Setup(e, mw)
}
