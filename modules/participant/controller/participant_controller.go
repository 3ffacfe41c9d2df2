package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/core/validator"
	participantdto "ella-rises-admin/modules/participant/dto"
	"ella-rises-admin/modules/participant/service"

	"github.com/labstack/echo/v4"
)

type ParticipantController struct {
	controller.BaseController
	ParticipantService service.ParticipantServiceInterface
}

func NewParticipantController(participantService service.ParticipantServiceInterface) *ParticipantController {
	return &ParticipantController{
		BaseController:     controller.NewBaseController(),
		ParticipantService: participantService,
	}
}

func (ctrl *ParticipantController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.DefaultPageSize)
	page, err := ctrl.ParticipantService.List(ctx, *queryParams)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Participants")
}

func (ctrl *ParticipantController) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Participant not found")
	}

	detail, errGet := ctrl.ParticipantService.GetDetail(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, detail, detail.Participant.FullName)
}

func (ctrl *ParticipantController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(participantdto.ParticipantRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errCreate := ctrl.ParticipantService.Create(ctx, requestData); errCreate != nil {
		if errCreate.Code == coreerrors.ErrAlreadyExists {
			return ctrl.FormError(c, errCreate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/participants", "Participant added successfully")
}

func (ctrl *ParticipantController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Participant not found")
	}

	requestData := new(participantdto.ParticipantRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errUpdate := ctrl.ParticipantService.Update(ctx, id, requestData); errUpdate != nil {
		if errUpdate.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errUpdate.Message)
		}
		return ctrl.ErrorResponse(c, errUpdate)
	}
	return ctrl.RedirectSuccess(c, "/participants", "Participant updated successfully")
}

func (ctrl *ParticipantController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Participant not found")
	}

	if errDelete := ctrl.ParticipantService.Delete(ctx, id); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/participants", "Participant deleted successfully")
}

func echoForm(requestData *participantdto.ParticipantRequest) map[string]string {
	return map[string]string{
		"email":              requestData.Email,
		"first_name":         requestData.FirstName,
		"last_name":          requestData.LastName,
		"role":               requestData.Role,
		"school_or_employer": requestData.SchoolOrEmployer,
		"phone":              requestData.Phone,
	}
}
