package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	Details    string    `json:"details,omitempty"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"request_id,omitempty"`
	Path       string    `json:"path,omitempty"`
	Method     string    `json:"method,omitempty"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(field, message string) *AppError {
	return NewAppError(
		ErrCodeValidation,
		fmt.Sprintf("Validation failed for field '%s': %s", field, message),
		http.StatusUnprocessableEntity,
		nil,
	)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(code, resource string) *AppError {
	return NewAppError(
		code,
		fmt.Sprintf("%s not found", resource),
		http.StatusNotFound,
		nil,
	)
}

// NewConflictError creates a conflict error
func NewConflictError(code, message string) *AppError {
	return NewAppError(
		code,
		message,
		http.StatusConflict,
		nil,
	)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(
		ErrCodeInternal,
		message,
		http.StatusInternalServerError,
		err,
	)
}

// NewDatabaseError creates a database error
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeDatabase,
		fmt.Sprintf("Database operation failed: %s", operation),
		http.StatusInternalServerError,
		err,
	)
}

// ErrorResponse represents the standard error response structure
type ErrorResponse struct {
	Error   *AppError `json:"error"`
	Success bool      `json:"success"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError) ErrorResponse {
	return ErrorResponse{
		Error:   err,
		Success: false,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// AsAppError returns err as an AppError, wrapping unknown errors as internal errors
func AsAppError(err error) *AppError {
	if appErr, ok := IsAppError(err); ok {
		return appErr
	}
	return NewInternalError("", err)
}

// Error codes for different categories of errors
const (
	ErrCodeUserNotFound        = "USER_NOT_FOUND"
	ErrCodeProgressNotFound    = "PROGRESS_NOT_FOUND"
	ErrCodeTransactionNotFound = "TRANSACTION_NOT_FOUND"
	ErrCodeContentNotFound     = "CONTENT_NOT_FOUND"

	ErrCodePhoneAlreadyRegistered = "PHONE_ALREADY_REGISTERED"
	ErrCodeEmailAlreadyRegistered = "EMAIL_ALREADY_REGISTERED"

	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeInvalidFormat    = "INVALID_FORMAT"
	ErrCodeInvalidPrecision = "INVALID_PRECISION"

	ErrCodeTimeout  = "TIMEOUT"
	ErrCodeDatabase = "DATABASE_ERROR"
	ErrCodeInternal = "INTERNAL_ERROR"
)
