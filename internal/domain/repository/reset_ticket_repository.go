package repository

import (
	"context"
	"time"

	"todo/internal/domain/entity"
	"todo/internal/errors"
)

// ErrResetTicketNotFound is returned when no ticket matches the email and hash.
var ErrResetTicketNotFound = errors.New("reset ticket not found")

// ResetTicketRepository stores the hashed tickets issued by OTP verification.
type ResetTicketRepository interface {
	Create(ctx context.Context, ticket *entity.ResetTicket) error

	// FindByEmailAndHash returns ErrResetTicketNotFound when nothing matches.
	FindByEmailAndHash(ctx context.Context, email, tokenHash string) (*entity.ResetTicket, error)

	DeleteByEmail(ctx context.Context, email string) (int64, error)

	DeleteExpiredBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
