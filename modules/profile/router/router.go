package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/profile/controller"

	"github.com/labstack/echo/v4"
)

type ProfileRouter struct {
	ProfileController *controller.ProfileController
}

func NewProfileRouter(profileController *controller.ProfileController) *ProfileRouter {
	return &ProfileRouter{ProfileController: profileController}
}

func (r *ProfileRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/profile", mw.RequireLogin())

	group.GET("", r.ProfileController.Show)
	group.POST("", r.ProfileController.Update)
}
