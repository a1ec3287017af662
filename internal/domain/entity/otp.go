package entity

import (
	"time"

	"github.com/google/uuid"
)

// Otp is a one-time passcode issued for a password reset.
// The service keeps at most one live row per email.
type Otp struct {
	ID        uuid.UUID
	Email     string
	Code      string // Six zero-padded digits.
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the code can no longer be used at now.
func (o *Otp) IsExpired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
