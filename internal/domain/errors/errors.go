package errors

import (
	"net/http"

	"todo/internal/errors"
)

// AppError is an error that knows how it should be rendered to a client.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // stable machine-readable kind
	Message() string   // human message
	Details() string   // optional detail, hidden for 5xx
}

// BaseError is the catalogue entry type for the auth error taxonomy.
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

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches catalogue entries by code so copies made by WithDetails still
// compare equal to the predefined value.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == other.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

var (
	// Password login and signup
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"Passwords do not match",
		"",
	)

	ErrWeakPassword = NewBaseError(
		http.StatusBadRequest,
		"WEAK_PASSWORD",
		"Password must be strong",
		"",
	)

	ErrEmailTaken = NewBaseError(
		http.StatusConflict,
		"EMAIL_TAKEN",
		"Email already exists",
		"",
	)

	ErrEmailNotFound = NewBaseError(
		http.StatusNotFound,
		"EMAIL_NOT_FOUND",
		"Email not found",
		"",
	)

	// Password reset
	ErrInvalidOtp = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OTP",
		"Invalid OTP",
		"",
	)

	ErrOtpExpired = NewBaseError(
		http.StatusBadRequest,
		"OTP_EXPIRED",
		"OTP has expired",
		"",
	)

	ErrInvalidResetTicket = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RESET_TICKET",
		"Password reset session is invalid or has expired",
		"",
	)

	ErrMailDeliveryFailed = NewBaseError(
		http.StatusBadGateway,
		"MAIL_DELIVERY_FAILED",
		"Failed to send OTP",
		"",
	)

	// Federated login and bearer tokens
	ErrFederatedExchangeFailed = NewBaseError(
		http.StatusUnauthorized,
		"FEDERATED_EXCHANGE_FAILED",
		"Google login failed",
		"",
	)

	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid or expired token",
		"",
	)

	// General
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError wraps a storage failure. It renders as a 500 and its
// details never reach the client.
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

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error to errors.Is checks.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
