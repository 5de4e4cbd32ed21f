package validator

import (
	"fmt"
	"slices"

	"github.com/NairoD34/bookmymovie/internal/domain"
	"github.com/go-playground/validator/v10"
)

const (
	ErrRequired  = "is required"
	ErrEmail     = "must be a valid email address"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrGreater   = "must be greater than %s"
	ErrCategory  = "must be one of: all action comedy drama horror sci-fi"
	ErrInvalid   = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("category", validateCategory)

	return validator
}

// validateCategory accepts the fixed category enumeration plus the "all"
// sentinel used by the catalog filter.
func validateCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()

	if category == domain.CategoryAll {
		return true
	}

	return slices.Contains(domain.Categories(), domain.Category(category))
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "email":
		return ErrEmail
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gt":
		return fmt.Sprintf(ErrGreater, err.Param())
	case "category":
		return ErrCategory
	default:
		return ErrInvalid
	}
}
