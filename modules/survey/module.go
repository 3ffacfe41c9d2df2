package survey

import (
	"ella-rises-admin/core/database"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/survey/controller"
	"ella-rises-admin/modules/survey/repository"
	"ella-rises-admin/modules/survey/router"
	"ella-rises-admin/modules/survey/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the survey module and registers routes
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware) {
	repo := repository.NewSurveyRepository(&db)
	svc := service.NewSurveyService(repo)
	ctrl := controller.NewSurveyController(svc)

	router.NewSurveyRouter(ctrl).Setup(e, mw)
}
