package controller

import (
	"net/http"
	"net/url"
	"time"

	"ella-rises-admin/core/config"
	"ella-rises-admin/core/errors"
	"ella-rises-admin/core/logger"

	"github.com/labstack/echo/v4"
)

// Response types
type (
	SuccessResponse struct {
		Status    int       `json:"status"`
		Message   string    `json:"message"`
		Data      any       `json:"data,omitempty"`
		Timestamp time.Time `json:"timestamp"`
	}

	ErrorResponse struct {
		Status    string           `json:"status"`
		Code      errors.ErrorCode `json:"code"`
		Message   string           `json:"message"`
		Details   any              `json:"details,omitempty"`
		Timestamp time.Time        `json:"timestamp"`
	}

	// FormResponse is the validation-failure reply for form posts: HTTP 200,
	// the message to show, and the submitted values echoed back so the client
	// can re-fill the form. Input is never dropped.
	FormResponse struct {
		Status  string            `json:"status"`
		Message string            `json:"message"`
		Form    map[string]string `json:"form,omitempty"`
	}
)

type BaseController interface {
	SuccessResponse(c echo.Context, data any, message string) error
	ErrorResponse(c echo.Context, err error) error
	FormError(c echo.Context, message string, form map[string]string) error
	RedirectSuccess(c echo.Context, path, message string) error
	RedirectError(c echo.Context, path, message string) error
	NotFound(c echo.Context, message string) error
	Forbidden(c echo.Context) error
}

type responseHandler struct{}

func NewBaseController() BaseController {
	return &responseHandler{}
}

func NewSuccessResponse(httpStatusCode int, data any, message string) *SuccessResponse {
	return &SuccessResponse{
		Status:    httpStatusCode,
		Message:   message,
		Data:      data,
		Timestamp: time.Now(),
	}
}

func NewErrorResponse(appErrCode errors.ErrorCode, message string, details ...any) *ErrorResponse {
	resp := &ErrorResponse{
		Status:    "error",
		Code:      appErrCode,
		Message:   message,
		Timestamp: time.Now(),
	}
	if len(details) > 0 {
		resp.Details = details[0]
	}
	return resp
}

func (h *responseHandler) SuccessResponse(c echo.Context, data any, message string) error {
	return c.JSON(http.StatusOK, NewSuccessResponse(http.StatusOK, data, message))
}

// FormError answers a form post whose input failed validation.
func (h *responseHandler) FormError(c echo.Context, message string, form map[string]string) error {
	return c.JSON(http.StatusOK, &FormResponse{Status: "invalid", Message: message, Form: form})
}

// RedirectSuccess sends the post/redirect/get reply successful mutations use;
// refreshing the list page cannot resubmit the form.
func (h *responseHandler) RedirectSuccess(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusFound, path+"?success="+url.QueryEscape(message))
}

func (h *responseHandler) RedirectError(c echo.Context, path, message string) error {
	return c.Redirect(http.StatusFound, path+"?error="+url.QueryEscape(message))
}

func (h *responseHandler) NotFound(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, NewErrorResponse(errors.ErrNotFound, message))
}

func (h *responseHandler) Forbidden(c echo.Context) error {
	return c.JSON(http.StatusForbidden, NewErrorResponse(errors.ErrForbidden,
		"You do not have permission to access this page. Manager or admin access required."))
}

// ErrorResponse maps an AppError to its HTTP status. Persistence detail stays
// in the server log; the client sees a generic message unless the server runs
// in development mode.
func (h *responseHandler) ErrorResponse(c echo.Context, err error) error {
	httpStatus := http.StatusInternalServerError
	appCode := errors.ErrInternalServer
	msg := "internal server error"

	if err != nil {
		if ae, ok := err.(*errors.AppError); ok && ae != nil {
			appCode = ae.Code
			if ae.Message != "" {
				msg = ae.Message
			}
			switch appCode {
			case errors.ErrInvalidInput, errors.ErrInvalidRequestData:
				httpStatus = http.StatusBadRequest
			case errors.ErrUnauthorized:
				httpStatus = http.StatusUnauthorized
			case errors.ErrForbidden:
				httpStatus = http.StatusForbidden
			case errors.ErrNotFound:
				httpStatus = http.StatusNotFound
			case errors.ErrAlreadyExists:
				httpStatus = http.StatusConflict
			default:
				httpStatus = http.StatusInternalServerError
			}
		}
	}

	logger.Error("BaseController:ErrorResponse",
		"status", httpStatus,
		"code", appCode,
		"message", msg,
		"error", err,
	)

	resp := NewErrorResponse(appCode, msg)
	if cfg, ok := config.GetSafe(); ok && cfg.IsDevelopment() && err != nil {
		resp.Details = err.Error()
	}
	return c.JSON(httpStatus, resp)
}
