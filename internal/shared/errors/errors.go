// Package errors defines the application error taxonomy. Every failure that
// crosses the application boundary is an AppError carrying the HTTP status it
// maps to, so handlers translate errors without switching on sentinel values.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType classifies an AppError.
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation_error"
	ErrorTypeNotFound     ErrorType = "not_found"
	ErrorTypeConflict     ErrorType = "conflict"
	ErrorTypeUnauthorized ErrorType = "unauthorized"
	ErrorTypeForbidden    ErrorType = "forbidden"
	ErrorTypeInternal     ErrorType = "internal_error"
)

// AppError is an error with a type and the HTTP status code it renders as.
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(errType ErrorType, code int, message string, details []string) *AppError {
	e := &AppError{
		Type:    errType,
		Message: message,
		Code:    code,
	}
	if len(details) > 0 {
		e.Details = details[0]
	}
	return e
}

func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusUnauthorized, message, details)
}

func NewForbiddenError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeForbidden, http.StatusForbidden, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// GetAppError extracts the AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsValidationError(err error) bool { return isType(err, ErrorTypeValidation) }

func IsNotFoundError(err error) bool { return isType(err, ErrorTypeNotFound) }

func IsConflictError(err error) bool { return isType(err, ErrorTypeConflict) }

func IsForbiddenError(err error) bool { return isType(err, ErrorTypeForbidden) }

// IsDuplicateError reports whether err is a unique constraint violation.
// Matched textually because the MySQL driver and the sqlite driver used in
// tests surface different error types for the same condition.
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	if strings.Contains(errStr, "Duplicate entry") || strings.Contains(errStr, "duplicate key") {
		return true
	}
	return strings.Contains(errStr, "UNIQUE constraint failed")
}
