package donation

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/donation/controller"
	"ella-rises-admin/modules/donation/repository"
	"ella-rises-admin/modules/donation/router"
	"ella-rises-admin/modules/donation/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the donation module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewDonationRepository(&db)
	svc := service.NewDonationService(repo)
	ctrl := controller.NewDonationController(svc)

	router.NewDonationRouter(ctrl).Setup(e, mw)
}
