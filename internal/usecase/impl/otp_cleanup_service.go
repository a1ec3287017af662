package impl

import (
	"context"
	"log/slog"
	"time"

	"todo/config"
	"todo/internal/domain/repository"
	"todo/internal/errors"
	"todo/internal/usecase"

	"go.uber.org/fx"
)

type otpCleanupService struct {
	otpRepo    repository.OtpRepository
	ticketRepo repository.ResetTicketRepository
	location   *time.Location
	now        func() time.Time
	logger     *slog.Logger
}

// OtpCleanupServiceParams holds dependencies for OtpCleanupService, injected by Fx.
type OtpCleanupServiceParams struct {
	fx.In

	OtpRepo    repository.OtpRepository
	TicketRepo repository.ResetTicketRepository
	Config     *config.Config
	Logger     *slog.Logger
}

// NewOtpCleanupService builds the sweep used by the cleanup scheduler.
func NewOtpCleanupService(params OtpCleanupServiceParams) (usecase.OtpCleanupUsecase, error) {
	location, err := time.LoadLocation(params.Config.OTP.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "load otp time zone %q", params.Config.OTP.TimeZone)
	}

	return &otpCleanupService{
		otpRepo:    params.OtpRepo,
		ticketRepo: params.TicketRepo,
		location:   location,
		now:        time.Now,
		logger:     params.Logger,
	}, nil
}

// CleanupExpired deletes every OTP and reset ticket that expired before now.
func (srv *otpCleanupService) CleanupExpired(ctx context.Context) (*usecase.CleanupResult, error) {
	now := srv.now()

	otps, err := srv.otpRepo.DeleteExpiredBefore(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete expired otps")
	}
	tickets, err := srv.ticketRepo.DeleteExpiredBefore(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to delete expired reset tickets")
	}

	result := &usecase.CleanupResult{
		OtpsDeleted:    otps,
		TicketsDeleted: tickets,
		RanAt:          now.In(srv.location),
	}

	level := slog.LevelDebug
	if otps > 0 || tickets > 0 {
		level = slog.LevelInfo
	}
	srv.logger.Log(ctx, level, "Expired OTPs cleaned up",
		slog.Int64("otps", otps),
		slog.Int64("tickets", tickets),
		slog.String("at", result.RanAt.Format(time.DateTime)),
	)

	return result, nil
}
