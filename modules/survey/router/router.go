package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/survey/controller"

	"github.com/labstack/echo/v4"
)

type SurveyRouter struct {
	SurveyController *controller.SurveyController
}

func NewSurveyRouter(surveyController *controller.SurveyController) *SurveyRouter {
	return &SurveyRouter{SurveyController: surveyController}
}

func (r *SurveyRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/surveys", mw.RequireLogin())

	group.GET("", r.SurveyController.List)
	group.GET("/:id", r.SurveyController.Detail)

	group.POST("", r.SurveyController.Create, mw.RequireManager())
	group.POST("/:id/delete", r.SurveyController.Delete, mw.RequireManager())
}
