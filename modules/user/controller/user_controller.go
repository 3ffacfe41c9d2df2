package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/middleware"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/core/validator"
	userdto "ella-rises-admin/modules/user/dto"
	"ella-rises-admin/modules/user/service"

	"github.com/labstack/echo/v4"
)

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
}

func NewUserController(userService service.UserServiceInterface) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    userService,
	}
}

func (ctrl *UserController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.DefaultPageSize)
	role := c.QueryParam("role")

	page, err := ctrl.UserService.List(ctx, *queryParams, role)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Users")
}

func (ctrl *UserController) Edit(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "User not found")
	}

	user, errGet := ctrl.UserService.GetByID(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, user, "Edit User")
}

func (ctrl *UserController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(userdto.CreateUserRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), createForm(requestData))
	}

	if errCreate := ctrl.UserService.Create(ctx, requestData); errCreate != nil {
		if errCreate.Code == coreerrors.ErrAlreadyExists {
			return ctrl.FormError(c, errCreate.Message, createForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/users", "User created successfully")
}

func (ctrl *UserController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "User not found")
	}

	requestData := new(userdto.UpdateUserRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), updateForm(requestData))
	}

	if errUpdate := ctrl.UserService.Update(ctx, id, requestData); errUpdate != nil {
		switch errUpdate.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errUpdate.Message)
		case coreerrors.ErrAlreadyExists, coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errUpdate.Message, updateForm(requestData))
		}
		return ctrl.ErrorResponse(c, errUpdate)
	}
	return ctrl.RedirectSuccess(c, "/users", "User updated successfully")
}

// Delete removes an account. Deleting your own account is refused so a
// manager cannot lock themselves out mid-session.
func (ctrl *UserController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "User not found")
	}

	if s := middleware.CurrentSession(c); s != nil && s.UserID == id {
		return ctrl.RedirectError(c, "/users", "You cannot delete your own account")
	}

	if errDelete := ctrl.UserService.Delete(ctx, id); errDelete != nil {
		if errDelete.Code == coreerrors.ErrDeleteFailed {
			return ctrl.RedirectError(c, "/users", errDelete.Message)
		}
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/users", "User deleted successfully")
}

func createForm(requestData *userdto.CreateUserRequest) map[string]string {
	return map[string]string{
		"username":   requestData.Username,
		"email":      requestData.Email,
		"first_name": requestData.FirstName,
		"last_name":  requestData.LastName,
		"role":       requestData.Role,
	}
}

func updateForm(requestData *userdto.UpdateUserRequest) map[string]string {
	return map[string]string{
		"username":   requestData.Username,
		"email":      requestData.Email,
		"first_name": requestData.FirstName,
		"last_name":  requestData.LastName,
		"role":       requestData.Role,
		"status":     requestData.Status,
	}
}
