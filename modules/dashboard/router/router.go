package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/dashboard/controller"

	"github.com/labstack/echo/v4"
)

type DashboardRouter struct {
	DashboardController *controller.DashboardController
}

func NewDashboardRouter(dashboardController *controller.DashboardController) *DashboardRouter {
	return &DashboardRouter{DashboardController: dashboardController}
}

func (r *DashboardRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.GET("/dashboard", r.DashboardController.Show, mw.RequireLogin(), mw.RequireManager())
}
