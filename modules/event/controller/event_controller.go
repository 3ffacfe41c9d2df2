package controller

import (
	"ella-rises-admin/core/constants"
	"ella-rises-admin/core/controller"
	coreerrors "ella-rises-admin/core/errors"
	"ella-rises-admin/core/params"
	"ella-rises-admin/core/utils"
	"ella-rises-admin/core/validator"
	eventdto "ella-rises-admin/modules/event/dto"
	"ella-rises-admin/modules/event/service"

	"github.com/labstack/echo/v4"
)

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(eventService service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   eventService,
	}
}

func (ctrl *EventController) List(c echo.Context) error {
	ctx := c.Request().Context()

	queryParams := params.NewQueryParams(c, constants.DefaultPageSize)
	eventType := c.QueryParam("type")

	page, err := ctrl.EventService.List(ctx, *queryParams, eventType)
	if err != nil {
		return ctrl.ErrorResponse(c, err)
	}
	return ctrl.SuccessResponse(c, page, "Events")
}

func (ctrl *EventController) Detail(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event not found")
	}

	detail, errGet := ctrl.EventService.GetDetail(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, detail, detail.Event.Name)
}

func (ctrl *EventController) ListOccurrences(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event not found")
	}

	occurrences, errGet := ctrl.EventService.ListOccurrences(ctx, id)
	if errGet != nil {
		if errGet.Code == coreerrors.ErrNotFound {
			return ctrl.NotFound(c, errGet.Message)
		}
		return ctrl.ErrorResponse(c, errGet)
	}
	return ctrl.SuccessResponse(c, occurrences, "Occurrences")
}

func (ctrl *EventController) Create(c echo.Context) error {
	ctx := c.Request().Context()

	requestData := new(eventdto.EventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errCreate := ctrl.EventService.Create(ctx, requestData); errCreate != nil {
		if errCreate.Code == coreerrors.ErrAlreadyExists || errCreate.Code == coreerrors.ErrInvalidInput {
			return ctrl.FormError(c, errCreate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errCreate)
	}
	return ctrl.RedirectSuccess(c, "/events", "Event added successfully")
}

func (ctrl *EventController) Update(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event not found")
	}

	requestData := new(eventdto.EventRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), echoForm(requestData))
	}

	if errUpdate := ctrl.EventService.Update(ctx, id, requestData); errUpdate != nil {
		switch errUpdate.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errUpdate.Message)
		case coreerrors.ErrAlreadyExists, coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errUpdate.Message, echoForm(requestData))
		}
		return ctrl.ErrorResponse(c, errUpdate)
	}
	return ctrl.RedirectSuccess(c, "/events", "Event updated successfully")
}

func (ctrl *EventController) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event not found")
	}

	if errDelete := ctrl.EventService.Delete(ctx, id); errDelete != nil {
		if errDelete.Code == coreerrors.ErrDeleteFailed {
			return ctrl.RedirectError(c, "/events", errDelete.Message)
		}
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/events", "Event deleted successfully")
}

func (ctrl *EventController) AddOccurrence(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event not found")
	}

	requestData := new(eventdto.OccurrenceRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), occurrenceForm(requestData))
	}

	if errAdd := ctrl.EventService.AddOccurrence(ctx, id, requestData); errAdd != nil {
		switch errAdd.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errAdd.Message)
		case coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errAdd.Message, occurrenceForm(requestData))
		}
		return ctrl.ErrorResponse(c, errAdd)
	}
	return ctrl.RedirectSuccess(c, "/events/"+c.Param("id"), "Occurrence scheduled successfully")
}

func (ctrl *EventController) DeleteOccurrence(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event occurrence not found")
	}

	if errDelete := ctrl.EventService.DeleteOccurrence(ctx, id); errDelete != nil {
		if errDelete.Code == coreerrors.ErrDeleteFailed {
			return ctrl.RedirectError(c, "/events", errDelete.Message)
		}
		return ctrl.ErrorResponse(c, errDelete)
	}
	return ctrl.RedirectSuccess(c, "/events", "Occurrence deleted successfully")
}

func (ctrl *EventController) Register(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		return ctrl.NotFound(c, "Event occurrence not found")
	}

	requestData := new(eventdto.RegistrationRequest)
	if err := c.Bind(requestData); err != nil {
		return ctrl.FormError(c, "Invalid request data", nil)
	}
	if result := validator.ValidateStruct(requestData); result.HasError() {
		return ctrl.FormError(c, result.Message(), nil)
	}

	if errRegister := ctrl.EventService.Register(ctx, id, requestData); errRegister != nil {
		switch errRegister.Code {
		case coreerrors.ErrNotFound:
			return ctrl.NotFound(c, errRegister.Message)
		case coreerrors.ErrAlreadyExists, coreerrors.ErrInvalidInput:
			return ctrl.FormError(c, errRegister.Message, nil)
		}
		return ctrl.ErrorResponse(c, errRegister)
	}
	return ctrl.RedirectSuccess(c, "/events", "Participant registered successfully")
}

func echoForm(requestData *eventdto.EventRequest) map[string]string {
	return map[string]string{
		"name":               requestData.Name,
		"type":               requestData.Type,
		"description":        requestData.Description,
		"recurrence_pattern": requestData.RecurrencePattern,
		"default_capacity":   requestData.DefaultCapacity,
	}
}

func occurrenceForm(requestData *eventdto.OccurrenceRequest) map[string]string {
	return map[string]string{
		"starts_at":             requestData.StartsAt,
		"ends_at":               requestData.EndsAt,
		"location":              requestData.Location,
		"capacity":              requestData.Capacity,
		"registration_deadline": requestData.RegistrationDeadline,
	}
}
