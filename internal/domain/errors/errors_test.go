package errors

import (
	"net/http"
	"testing"

	"todo/internal/errors"

	"github.com/stretchr/testify/assert"
)

// catalogue lists every entry the handlers can render.
var catalogue = []*BaseError{
	ErrInvalidCredentials,
	ErrPasswordMismatch,
	ErrWeakPassword,
	ErrEmailTaken,
	ErrEmailNotFound,
	ErrInvalidOtp,
	ErrOtpExpired,
	ErrInvalidResetTicket,
	ErrMailDeliveryFailed,
	ErrFederatedExchangeFailed,
	ErrInvalidToken,
	ErrValidationFailed,
	ErrInternalError,
}

func TestCatalogue_CodesAreUnique(t *testing.T) {
	seen := make(map[string]bool, len(catalogue))
	for _, e := range catalogue {
		assert.False(t, seen[e.ErrorCode()], "duplicate code %s", e.ErrorCode())
		seen[e.ErrorCode()] = true
		assert.NotEmpty(t, e.Message())
	}
}

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrWeakPassword.WithDetails("password must contain at least one number")

	assert.ErrorIs(t, detailed, ErrWeakPassword)
	assert.NotErrorIs(t, detailed, ErrPasswordMismatch)
	assert.Equal(t, "Password must be strong: password must contain at least one number", detailed.Error())
	assert.Empty(t, ErrWeakPassword.Details())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrEmailTaken.WrapMessage("failed to create user")

	assert.ErrorIs(t, err, ErrEmailTaken)

	var appErr AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to delete expired otps")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
}
