package mail

import (
	"context"
	"time"

	"todo/config"
	"todo/internal/domain/service"
	"todo/internal/errors"

	"github.com/mrz1836/postmark"
)

const resetMailTag = "password-reset"

type postmarkSender struct {
	client  *postmark.Client
	from    string
	replyTo string
	timeout time.Duration
}

// NewPostmarkSender sends through Postmark's transactional API.
func NewPostmarkSender(cfg config.MailConfig) (service.MailSender, error) {
	if cfg.PostmarkServerToken == "" {
		return nil, errors.New("postmark server token is required")
	}
	if cfg.SenderEmail == "" {
		return nil, errors.New("mail sender address is required")
	}

	return &postmarkSender{
		client:  postmark.NewClient(cfg.PostmarkServerToken, cfg.PostmarkAccountToken),
		from:    cfg.SenderEmail,
		replyTo: cfg.SupportEmail,
		timeout: cfg.Timeout,
	}, nil
}

func (s *postmarkSender) Send(ctx context.Context, to, subject, body string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	resp, err := s.client.SendEmail(ctx, postmark.Email{
		From:     s.from,
		ReplyTo:  s.replyTo,
		To:       to,
		Subject:  subject,
		Tag:      resetMailTag,
		TextBody: body,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, errors.Wrap(err, "postmark send"))
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, errors.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}

	return nil
}
