package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

// Setup registers user management routes. The entire group is manager-only.
func (r *UserRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/users", mw.RequireLogin(), mw.RequireManager())

	group.GET("", r.UserController.List)
	group.GET("/:id/edit", r.UserController.Edit)
	group.POST("", r.UserController.Create)
	group.POST("/:id", r.UserController.Update)
	group.POST("/:id/delete", r.UserController.Delete)
}
