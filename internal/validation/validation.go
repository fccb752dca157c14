// Package validation contains the logic for binding and validating request
// data at the HTTP boundary, before anything reaches the service layer.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/ncnews/api/internal/errs"
)

// Validatable is implemented by request payload types that know how to
// validate themselves, typically by running validator.Struct against their
// own tags.
type Validatable interface {
	Validate() error
}

// validate is the shared validator instance for request types.
var validate = validator.New()

// Struct runs tag-based validation on a request payload. Request types use
// it from their Validate methods.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds request data into payload and, when the payload
// implements Validatable, validates it.
//
// A bind failure (malformed JSON, type mismatch) becomes the same
// 400 "Invalid input" a storage-level type error produces; a validation
// failure becomes a 400 listing the offending fields. Request types decode
// with plain struct tags, so unknown JSON fields are dropped rather than
// rejected.
func BindAndValidate(c echo.Context, payload any) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError("Invalid input")
	}

	if v, ok := payload.(Validatable); ok {
		if err := v.Validate(); err != nil {
			return errs.NewBadRequestError(validationMessage(err))
		}
	}

	return nil
}

// validationMessage flattens a validator error into a single client-facing
// message, since the API's error body carries one message string.
func validationMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		field := strings.ToLower(fieldErr.Field())

		switch fieldErr.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("'%s' is required", field))
		case "min":
			parts = append(parts, fmt.Sprintf("'%s' must be at least %s", field, fieldErr.Param()))
		case "max":
			parts = append(parts, fmt.Sprintf("'%s' must not exceed %s", field, fieldErr.Param()))
		case "oneof":
			parts = append(parts, fmt.Sprintf("'%s' must be one of: %s", field, fieldErr.Param()))
		default:
			parts = append(parts, fmt.Sprintf("'%s' is invalid", field))
		}
	}

	return "Validation failed: " + strings.Join(parts, "; ")
}
