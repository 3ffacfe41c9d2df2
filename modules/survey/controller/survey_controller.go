package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	surveydto "ella-rises-admin/modules/survey/dto"
	"ella-rises-admin/modules/survey/service"

	"github.com/labstack/echo/v4"
)

type SurveyController struct {
	controller.BaseController
	SurveyService service.SurveyServiceInterface
}

func NewSurveyController(surveyService service.SurveyServiceInterface) *SurveyController {
	return &SurveyController{
		BaseController: controller.NewBaseController(),
		SurveyService:  surveyService,
	}
}

func (ctrl *SurveyController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.SurveyPageSize)
	page, err := ctrl.SurveyService.List(ctx, *queryParams)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Surveys")
}

func (ctrl *SurveyController) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Survey not found")
	}

	survey, errGet := ctrl.SurveyService.GetByID(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, survey, "Survey")
}

func (ctrl *SurveyController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(surveydto.SurveyRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}

	if errCreate := ctrl.SurveyService.Create(ctx, requestData); errCreate != nil {
		switch errCreate.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errCreate.Message)
		case coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errCreate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/surveys", "Survey recorded successfully")
}

func (ctrl *SurveyController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Survey not found")
	}

	if errDelete := ctrl.SurveyService.Delete(ctx, id); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/surveys", "Survey deleted successfully")
}

func echoForm(requestData *surveydto.SurveyRequest) map[string]string {
	return map[string]string{
		"registration_id":    requestData.RegistrationID,
		"satisfaction_score": requestData.SatisfactionScore,
		"comments":           requestData.Comments,
	}
}
