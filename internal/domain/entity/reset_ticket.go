package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetTicket binds a successful OTP verification to the password change that
// follows it. Only the SHA-256 hash of the ticket handed to the client is stored.
type ResetTicket struct {
	ID        uuid.UUID
	Email     string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// IsExpired reports whether the ticket can no longer be redeemed at now.
func (t *ResetTicket) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
