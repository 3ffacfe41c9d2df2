package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/core/validator"
	milestonedto "ella-rises-admin/modules/milestone/dto"
	"ella-rises-admin/modules/milestone/service"

	"github.com/labstack/echo/v4"
)

type MilestoneController struct {
	controller.BaseController
	MilestoneService service.MilestoneServiceInterface
}

func NewMilestoneController(milestoneService service.MilestoneServiceInterface) *MilestoneController {
	return &MilestoneController{
		BaseController:   controller.NewBaseController(),
		MilestoneService: milestoneService,
	}
}

func (ctrl *MilestoneController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.DefaultPageSize)
	typeTitle := c.QueryParam("type")

	page, err := ctrl.MilestoneService.List(ctx, *queryParams, typeTitle)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Milestones")
}

func (ctrl *MilestoneController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(milestonedto.MilestoneRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errCreate := ctrl.MilestoneService.Create(ctx, requestData); errCreate != nil {
		switch errCreate.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errCreate.Message)
		case coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errCreate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/milestones", "Milestone recorded successfully")
}

func (ctrl *MilestoneController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Milestone not found")
	}

	if errDelete := ctrl.MilestoneService.Delete(ctx, id); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/milestones", "Milestone deleted successfully")
}

func (ctrl *MilestoneController) ListTypes(c echo.Context) error {
	ctx := c.Request().Context()

	types, err := ctrl.MilestoneService.ListTypes(ctx)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, types, "Milestone Types")
}

func (ctrl *MilestoneController) CreateType(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(milestonedto.MilestoneTypeRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), typeForm(requestData))
	}

	if errCreate := ctrl.MilestoneService.CreateType(ctx, requestData); errCreate != nil {
		if errCreate.Code == coreerrors.ErrAlreadyExists {
			return ctrl.FormError(c, errCreate.Message, typeForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/milestones/types", "Milestone type added successfully")
}

func (ctrl *MilestoneController) DeleteType(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Milestone type not found")
	}

	if errDelete := ctrl.MilestoneService.DeleteType(ctx, id); errDelete != nil {
		if errDelete.Code == coreerrors.ErrDeleteFailed {
			return ctrl.RedirectError(c, "/milestones/types", errDelete.Message)
		}
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/milestones/types", "Milestone type deleted successfully")
}

func echoForm(requestData *milestonedto.MilestoneRequest) map[string]string {
	return map[string]string{
		"participant_id":    requestData.ParticipantID,
		"milestone_type_id": requestData.MilestoneTypeID,
		"milestone_date":    requestData.MilestoneDate,
		"notes":             requestData.Notes,
	}
}

func typeForm(requestData *milestonedto.MilestoneTypeRequest) map[string]string {
	return map[string]string{
		"title":    requestData.Title,
		"category": requestData.Category,
	}
}
