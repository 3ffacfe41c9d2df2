package controller

import (
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/core/validator"
	profiledto "ella-rises-admin/modules/profile/dto"
	"ella-rises-admin/modules/profile/service"

	"github.com/labstack/echo/v4"
)

type ProfileController struct {
	controller.BaseController
	ProfileService service.ProfileServiceInterface
}

func NewProfileController(profileService service.ProfileServiceInterface) *ProfileController {
	return &ProfileController{
		BaseController: controller.NewBaseController(),
		ProfileService: profileService,
	}
}

func (ctrl *ProfileController) Show(c echo.Context) error {
	ctx := c.Request().Context()

	s := middleware.CurrentSession(c)
	if s == nil {
		return ctrl.Forbidden(c)
	}

	profile, err := ctrl.ProfileService.Get(ctx, s.UserID)
	if err != nil {
		if err.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, err.Message)
		}
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, profile, "My Profile")
}

func (ctrl *ProfileController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	s := middleware.CurrentSession(c)
	if s == nil {
		return ctrl.Forbidden(c)
	}

	requestData := new(profiledto.UpdateProfileRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errUpdate := ctrl.ProfileService.Update(ctx, s, requestData); errUpdate != nil {
		switch errUpdate.Code {
		case coreerrors.ErrAlreadyExists, coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errUpdate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errUpdate)
	}
	return ctrl.RedirectSuccess(c, "/profile", "Profile updated successfully")
}

// echoForm never includes the password fields.
func echoForm(requestData *profiledto.UpdateProfileRequest) map[string]string {
	return map[string]string{
		"username": requestData.Username,
	}
}
