package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationResult struct {
	Errors []ValidationError `json:"errors,omitempty"`
}

func (r *ValidationResult) HasError() bool { return len(r.Errors) > 0 }

func (r *ValidationResult) Add(field, message string) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Message: message})
}

// Message flattens the errors into the single flash-style string the form
// responses carry.
func (r *ValidationResult) Message() string {
	if !r.HasError() {
		return ""
	}
	parts := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		parts[i] = e.Message
	}
	return strings.Join(parts, "; ")
}

// ValidateStruct runs the validate tags on a request DTO.
func ValidateStruct(s any) *ValidationResult {
	result := &ValidationResult{}
	err := validate.Struct(s)
	if err == nil {
		return result
	}
	invalid, ok := err.(validator.ValidationErrors)
	if !ok {
		result.Add("", err.Error())
		return result
	}
	for _, fe := range invalid {
		result.Add(fe.Field(), describe(fe))
	}
	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
