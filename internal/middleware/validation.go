package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/rkabir/profscope/internal/app/models/dto"
)

// FormatValidationErrors turns binding errors into the field-level detail
// list the error envelope carries
func FormatValidationErrors(err error) *dto.ValidationErrors {
	result := dto.NewValidationErrors()

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		result.AddError("", err.Error())
		return result
	}

	for _, fieldErr := range validationErrs {
		result.AddError(fieldErr.Field(), formatValidationError(fieldErr))
	}
	return result
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min", "gte":
		return e.Field() + " must be at least " + e.Param()
	case "max", "lte":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	case "url":
		return e.Field() + " must be a valid URL"
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
