package controller

import (
	"net/http"

	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/core/validator"
	"ella-rises-admin/modules/auth/dto"
	"ella-rises-admin/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// LoginPage reports the state the login form renders from. An authenticated
// visitor is bounced straight to their landing page.
func (ctrl *AuthController) LoginPage(c echo.Context) error {
	if s := middleware.CurrentSession(c); s != nil {
		if s.IsElevated() {
			return c.Redirect(http.StatusFound, "/dashboard")
		}
		return c.Redirect(http.StatusFound, "/participants")
	}
	return ctrl.SuccessResponse(c, map[string]string{
		"error":   c.QueryParam("error"),
		"success": c.QueryParam("success"),
	}, "Login")
}

func (ctrl *AuthController) Login(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.LoginRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, service.InvalidCredentials, nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, service.InvalidCredentials,
			map[string]string{"username": requestData.Username})
	}

	s, errLogin := ctrl.AuthService.Login(ctx, requestData)
	if errLogin != nil {
		if errLogin.Code == coreerrors.ErrUnauthorized {
			// The password never comes back in the echoed form values.
			return ctrl.FormError(c, errLogin.Message,
				map[string]string{"username": requestData.Username})
		}
		return ctrl.ErrorResponse(c, errLogin)
	}

	if err := middleware.WriteSessionCookie(c, s.ID); err != nil {
		return ctrl.ErrorResponse(c,
			coreerrors.NewAppError(coreerrors.ErrInternalServer, "An error occurred. Please try again.", err))
	}

	if s.IsElevated() {
		return c.Redirect(http.StatusFound, "/dashboard")
	}
	return c.Redirect(http.StatusFound, "/participants")
}

func (ctrl *AuthController) RegisterPage(c echo.Context) error {
	return ctrl.SuccessResponse(c, map[string]string{
		"error":   c.QueryParam("error"),
		"success": c.QueryParam("success"),
	}, "Register")
}

func (ctrl *AuthController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(dto.RegisterRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}

	echoed := map[string]string{
		"username":   requestData.Username,
		"email":      requestData.Email,
		"first_name": requestData.FirstName,
		"last_name":  requestData.LastName,
	}

	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoed)
	}

	if errRegister := ctrl.AuthService.Register(ctx, requestData); errRegister != nil {
		if errRegister.Code == coreerrors.ErrAlreadyExists {
			return ctrl.FormError(c, errRegister.Message, echoed)
		}
		return ctrl.ErrorResponse(c, errRegister)
	}

	return ctrl.RedirectSuccess(c, "/auth/login", "Account created successfully. Please login.")
}

func (ctrl *AuthController) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if errLogout := ctrl.AuthService.Logout(ctx, middleware.SessionID(c)); errLogout != nil {
		return ctrl.ErrorResponse(c, errLogout)
	}
	middleware.ClearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/")
}
