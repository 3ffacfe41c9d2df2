package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/milestone/controller"

	"github.com/labstack/echo/v4"
)

type MilestoneRouter struct {
	MilestoneController *controller.MilestoneController
}

func NewMilestoneRouter(milestoneController *controller.MilestoneController) *MilestoneRouter {
	return &MilestoneRouter{MilestoneController: milestoneController}
}

// Setup registers milestone routes. "/types" must be registered before
// "/:id" style routes would be, but echo matches static segments first
// anyway.
func (r *MilestoneRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/milestones", mw.RequireLogin())

	group.GET("", r.MilestoneController.List)
	group.GET("/types", r.MilestoneController.ListTypes)

	group.POST("", r.MilestoneController.Create, mw.RequireManager())
	group.POST("/:id/delete", r.MilestoneController.Delete, mw.RequireManager())
	group.POST("/types", r.MilestoneController.CreateType, mw.RequireManager())
	group.POST("/types/:id/delete", r.MilestoneController.DeleteType, mw.RequireManager())
}
