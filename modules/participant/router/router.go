package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/participant/controller"

	"github.com/labstack/echo/v4"
)

type ParticipantRouter struct {
	ParticipantController *controller.ParticipantController
}

func NewParticipantRouter(participantController *controller.ParticipantController) *ParticipantRouter {
	return &ParticipantRouter{ParticipantController: participantController}
}

// Setup registers participant routes. Reads need a login; mutations need a
// manager or admin session.
func (r *ParticipantRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/participants", mw.RequireLogin())

	group.GET("", r.ParticipantController.List)
	group.GET("/:id", r.ParticipantController.Detail)

	group.POST("", r.ParticipantController.Create, mw.RequireManager())
	group.POST("/:id", r.ParticipantController.Update, mw.RequireManager())
	group.POST("/:id/delete", r.ParticipantController.Delete, mw.RequireManager())
}
