// Package mail delivers transactional mail for the password reset flow.
package mail

import (
	"log/slog"

	"todo/config"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"go.uber.org/fx"
)

// ErrSendFailed marks every delivery failure regardless of provider.
var ErrSendFailed = errors.New("mail delivery failed")

// Params defines the parameters required for the mail sender
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns the sender selected by mail.provider.
func New(params Params) (service.MailSender, error) {
	switch params.Config.Mail.Provider {
	case config.MailProviderPostmark:
		return NewPostmarkSender(params.Config.Mail)
	case config.MailProviderLog:
		return NewLogSender(params.Logger), nil
	default:
		return nil, errors.Errorf("unknown mail provider: %s", params.Config.Mail.Provider)
	}
}
