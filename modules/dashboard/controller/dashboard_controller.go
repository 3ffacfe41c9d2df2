package controller

import (
	"ella-rises-admin/core/controller"
	"ella-rises-admin/modules/dashboard/service"

	"github.com/labstack/echo/v4"
)

type DashboardController struct {
	controller.BaseController
	DashboardService service.DashboardServiceInterface
}

func NewDashboardController(dashboardService service.DashboardServiceInterface) *DashboardController {
	return &DashboardController{
		BaseController:   controller.NewBaseController(),
		DashboardService: dashboardService,
	}
}

func (ctrl *DashboardController) Show(c echo.Context) error {
	ctx := c.Request().Context()

	dashboard, err := ctrl.DashboardService.Get(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, dashboard, "Dashboard")
}
