package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/core/validator"
	donationdto "ella-rises-admin/modules/donation/dto"
	"ella-rises-admin/modules/donation/service"

	"github.com/labstack/echo/v4"
)

type DonationController struct {
	controller.BaseController
	DonationService service.DonationServiceInterface
}

func NewDonationController(donationService service.DonationServiceInterface) *DonationController {
	return &DonationController{
		BaseController:  controller.NewBaseController(),
		DonationService: donationService,
	}
}

func (ctrl *DonationController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.DefaultPageSize)
	amountFilter := c.QueryParam("amountFilter")

	page, err := ctrl.DonationService.List(ctx, *queryParams, amountFilter)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Donations")
}

func (ctrl *DonationController) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Donation not found")
	}

	donation, errGet := ctrl.DonationService.GetByID(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, donation, "Donation")
}

// Donate is the public intake endpoint. It sits outside the authenticated
// groups so supporters can give without an account.
func (ctrl *DonationController) Donate(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(donationdto.DonationRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errCreate := ctrl.DonationService.Create(ctx, requestData); errCreate != nil {
		switch errCreate.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errCreate.Message)
		case coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errCreate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/donate", "Thank you for your donation!")
}

func (ctrl *DonationController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Donation not found")
	}

	if errDelete := ctrl.DonationService.Delete(ctx, id); errDelete != nil {
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/donations", "Donation deleted successfully")
}

func echoForm(requestData *donationdto.DonationRequest) map[string]string {
	return map[string]string{
		"donor_name":     requestData.DonorName,
		"donor_email":    requestData.DonorEmail,
		"donor_phone":    requestData.DonorPhone,
		"amount":         requestData.Amount,
		"donation_type":  requestData.DonationType,
		"participant_id": requestData.ParticipantID,
	}
}
