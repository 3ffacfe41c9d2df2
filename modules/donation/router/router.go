package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/donation/controller"

	"github.com/labstack/echo/v4"
)

type DonationRouter struct {
	DonationController *controller.DonationController
}

func NewDonationRouter(donationController *controller.DonationController) *DonationRouter {
	return &DonationRouter{DonationController: donationController}
}

// Setup registers donation routes. POST /donate is deliberately public.
func (r *DonationRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	e.POST("/donate", r.DonationController.Donate)

	group := e.Group("/donations", mw.RequireLogin())
	group.GET("", r.DonationController.List)
	group.GET("/:id", r.DonationController.Detail)
	group.POST("/:id/delete", r.DonationController.Delete, mw.RequireManager())
}
