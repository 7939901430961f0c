package utils

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"bugtrail/internal/shared/errors"
)

// BindingError converts a gin binding failure into a validation AppError.
// Field-level failures are rendered one message per field; anything else
// (malformed JSON, type mismatches) keeps the raw error text.
func BindingError(err error) *errors.AppError {
	var validationErrors validator.ValidationErrors
	if !stderrors.As(err, &validationErrors) {
		return errors.NewValidationError(err.Error())
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, getFieldErrorMessage(fieldError))
	}

	return errors.NewValidationError(
		"Validation failed",
		strings.Join(messages, "; "),
	)
}

// getFieldErrorMessage returns a user-friendly error message for a field validation error
func getFieldErrorMessage(fe validator.FieldError) string {
	field := fe.Field()
	tag := fe.Tag()
	param := fe.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at least %s", field, param)
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, param)
		}
		return fmt.Sprintf("%s must be at most %s", field, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s]", field, param)
	default:
		return fmt.Sprintf("%s failed validation for '%s'", field, tag)
	}
}
