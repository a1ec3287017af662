package mail

import (
	"context"
	"log/slog"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/service"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender writes mail to the log instead of sending it. Local use only:
// the body carries the OTP.
func NewLogSender(logger *slog.Logger) service.MailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, to, subject, body string) error {
	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Info("Mail captured by log provider",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
