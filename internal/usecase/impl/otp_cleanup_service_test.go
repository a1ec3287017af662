package impl

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"todo/config"
	"todo/internal/errors"
	mockRepo "todo/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCleanupService(t *testing.T, buf *bytes.Buffer) (*otpCleanupService, *mockRepo.MockOtpRepository, *mockRepo.MockResetTicketRepository) {
	otpRepo := mockRepo.NewMockOtpRepository(t)
	ticketRepo := mockRepo.NewMockResetTicketRepository(t)

	cfg := &config.Config{}
	cfg.OTP.TimeZone = "Asia/Ho_Chi_Minh"

	svc, err := NewOtpCleanupService(OtpCleanupServiceParams{
		OtpRepo:    otpRepo,
		TicketRepo: ticketRepo,
		Config:     cfg,
		Logger:     slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)

	srv := svc.(*otpCleanupService)
	srv.now = func() time.Time { return fixedNow }

	return srv, otpRepo, ticketRepo
}

func TestOtpCleanupService_CleanupExpired(t *testing.T) {
	var buf bytes.Buffer
	srv, otpRepo, ticketRepo := newTestCleanupService(t, &buf)
	ctx := context.Background()

	otpRepo.EXPECT().DeleteExpiredBefore(ctx, fixedNow).Return(3, nil)
	ticketRepo.EXPECT().DeleteExpiredBefore(ctx, fixedNow).Return(1, nil)

	result, err := srv.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, result.OtpsDeleted)
	assert.EqualValues(t, 1, result.TicketsDeleted)
	assert.Equal(t, "Asia/Ho_Chi_Minh", result.RanAt.Location().String())
	assert.True(t, result.RanAt.Equal(fixedNow))

	assert.Contains(t, buf.String(), `"level":"INFO"`)
	// 10:00 UTC is 17:00 in Ho Chi Minh City
	assert.Contains(t, buf.String(), "2025-03-01 17:00:00")
}

func TestOtpCleanupService_NothingExpiredLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	srv, otpRepo, ticketRepo := newTestCleanupService(t, &buf)
	ctx := context.Background()

	otpRepo.EXPECT().DeleteExpiredBefore(ctx, fixedNow).Return(0, nil)
	ticketRepo.EXPECT().DeleteExpiredBefore(ctx, fixedNow).Return(0, nil)

	_, err := srv.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
}

func TestOtpCleanupService_StoreFailure(t *testing.T) {
	var buf bytes.Buffer
	srv, otpRepo, _ := newTestCleanupService(t, &buf)
	ctx := context.Background()

	otpRepo.EXPECT().DeleteExpiredBefore(ctx, fixedNow).Return(0, errors.New("db gone"))

	_, err := srv.CleanupExpired(ctx)
	assert.Error(t, err)
}

func TestNewOtpCleanupService_BadTimeZone(t *testing.T) {
	cfg := &config.Config{}
	cfg.OTP.TimeZone = "Mars/Olympus_Mons"

	_, err := NewOtpCleanupService(OtpCleanupServiceParams{Config: cfg, Logger: slog.Default()})
	assert.Error(t, err)
}
