package usecase

import (
	"context"
	"time"
)

// CleanupResult reports one sweep.
type CleanupResult struct {
	OtpsDeleted    int64
	TicketsDeleted int64
	RanAt          time.Time // in the configured OTP time zone
}

// OtpCleanupUsecase purges expired reset credentials.
type OtpCleanupUsecase interface {
	CleanupExpired(ctx context.Context) (*CleanupResult, error)
}
