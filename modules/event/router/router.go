package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/events", mw.RequireLogin())

	group.GET("", r.EventController.List)
	group.GET("/:id", r.EventController.Detail)
	group.GET("/:id/occurrences", r.EventController.ListOccurrences)

	group.POST("", r.EventController.Create, mw.RequireManager())
	group.POST("/:id", r.EventController.Update, mw.RequireManager())
	group.POST("/:id/delete", r.EventController.Delete, mw.RequireManager())
	group.POST("/:id/occurrences", r.EventController.AddOccurrence, mw.RequireManager())

	occurrences := e.Group("/occurrences", mw.RequireLogin(), mw.RequireManager())
	occurrences.POST("/:id/delete", r.EventController.DeleteOccurrence)
	occurrences.POST("/:id/registrations", r.EventController.Register)
}
