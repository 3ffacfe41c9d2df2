package router

import (
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

// Setup registers the public authentication routes.
func (r *AuthRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	group := e.Group("/auth")

	group.GET("/login", r.AuthController.LoginPage)
	group.POST("/login", r.AuthController.Login)
	group.GET("/register", r.AuthController.RegisterPage)
	group.POST("/register", r.AuthController.Register)
	group.GET("/logout", r.AuthController.Logout)
}
