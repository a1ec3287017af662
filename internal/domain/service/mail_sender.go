package service

import "context"

// MailSender delivers a plain-text message to one recipient.
type MailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}
