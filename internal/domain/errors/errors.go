package errors

import (
	"net/http"

	"fittrack/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. Messages mirror the wording the frontend
// already displays, so they are part of the observable behavior.
var (
	// Client input errors
	ErrMissingParameters = NewBaseError(
		http.StatusBadRequest,
		"MISSING_PARAMETERS",
		"Parameters missing",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusConflict,
		"PASSWORD_MISMATCH",
		"Passwords must match",
		"",
	)

	// Conflict errors; also raised late by the store under a
	// concurrent-insert race, mapped to the same values.
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"Username already taken. Please choose a different one.",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"A user with this email address already exists.",
		"",
	)

	// Authorization errors. Credential failures are deliberately
	// generic: unknown username and wrong password are identical.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Username and/or password are incorrect.",
		"",
	)

	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"Authentication required.",
		"",
	)

	ErrAdminProtected = NewBaseError(
		http.StatusForbidden,
		"ADMIN_PROTECTED",
		"Can not retrieve admin account.",
		"",
	)

	// Not-found errors, distinct from authorization failures.
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"User account not found.",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_EMAIL",
		"Invalid email",
		"",
	)

	// Dependency/gateway errors
	ErrNotificationFailed = NewBaseError(
		http.StatusBadGateway,
		"NOTIFICATION_FAILED",
		"Failed to send recovery email.",
		"",
	)

	ErrSessionDestroyFailed = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_DESTROY_FAILED",
		"Failed to destroy session.",
		"",
	)

	ErrDeleteFailed = NewBaseError(
		http.StatusConflict,
		"DELETE_FAILED",
		"Failed to delete user account.",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error.",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed."
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
