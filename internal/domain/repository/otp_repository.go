package repository

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/errors"

	"github.com/google/uuid"
)

// ErrOtpNotFound is returned when no OTP matches both email and code.
var ErrOtpNotFound = errors.New("otp not found")

// OtpRepository stores one-time passcodes keyed by email.
type OtpRepository interface {
	// AcquireEmailLock serializes OTP work for one email until the surrounding
	// transaction ends. Outside a transaction it is a no-op.
	AcquireEmailLock(ctx context.Context, email string) error

	Create(ctx context.Context, otp *entity.Otp) error

	// FindByEmailAndCode returns ErrOtpNotFound unless both fields match exactly.
	FindByEmailAndCode(ctx context.Context, email, code string) (*entity.Otp, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByEmail removes every OTP of email and returns the count.
	DeleteByEmail(ctx context.Context, email string) (int64, error)

	// DeleteExpiredBefore removes every OTP with ExpiresAt < cutoff in one statement.
	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
