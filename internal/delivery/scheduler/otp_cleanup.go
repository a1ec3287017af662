// Package scheduler runs periodic background jobs alongside the API server.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"todo/config"
	"todo/internal/domain/lifecycle"
	"todo/internal/usecase"

	"go.uber.org/fx"
)

// OtpCleanupScheduler sweeps expired OTPs and reset tickets on a fixed period,
// independently of request traffic.
type OtpCleanupScheduler struct {
	cleanup  usecase.OtpCleanupUsecase
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// OtpCleanupSchedulerParams holds dependencies for the scheduler, injected by Fx.
type OtpCleanupSchedulerParams struct {
	fx.In

	Lc      fx.Lifecycle
	Cfg     *config.Config
	Logger  *slog.Logger
	Cleanup usecase.OtpCleanupUsecase
}

// NewOtpCleanupScheduler wires the sweep into the fx lifecycle.
func NewOtpCleanupScheduler(params OtpCleanupSchedulerParams) *OtpCleanupScheduler {
	s := newOtpCleanupScheduler(params.Cleanup, params.Cfg.OTP.CleanupInterval, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: s.Start,
		OnStop:  s.Stop,
	})

	return s
}

func newOtpCleanupScheduler(cleanup usecase.OtpCleanupUsecase, interval time.Duration, logger *slog.Logger) *OtpCleanupScheduler {
	if interval <= 0 {
		interval = config.DefaultOTPCleanupInterval
	}

	return &OtpCleanupScheduler{
		cleanup:  cleanup,
		interval: interval,
		logger:   logger,
	}
}

// Start launches the ticker goroutine. The hook context only bounds startup,
// so the loop runs on a detached context.
func (s *OtpCleanupScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return nil
	}

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s.cancel = cancel
	s.done = make(chan struct{})

	go s.run(runCtx, s.done)

	s.logger.Info("OTP cleanup scheduler started", slog.Duration("interval", s.interval))

	return nil
}

// Stop cancels the loop and waits for an in-flight sweep to return.
func (s *OtpCleanupScheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()

	select {
	case <-done:
		s.logger.Info("OTP cleanup scheduler stopped")

		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *OtpCleanupScheduler) run(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

// tick never lets a failure escape: the next period runs regardless.
func (s *OtpCleanupScheduler) tick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("OTP cleanup panicked", slog.Any("panic", r))
		}
	}()

	tickCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := s.cleanup.CleanupExpired(tickCtx); err != nil {
		s.logger.Error("OTP cleanup failed", slog.Any("error", err))
	}
}
