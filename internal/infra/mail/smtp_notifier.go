// Package mail implements the recovery notifier over SMTP.
package mail

import (
	"context"

	"fittrack/internal/domain/service"
	"fittrack/internal/errors"

	gomail "gopkg.in/gomail.v2"
)

// Config holds the SMTP transport settings for recovery mail.
type Config struct {
	Host     string `json:"host" yaml:"host" validate:"required"`
	Port     int    `json:"port" yaml:"port" validate:"required"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from" validate:"required"`
}

// smtpNotifier sends recovery messages through a single SMTP account.
type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier builds a RecoveryNotifier from the SMTP config.
func NewSMTPNotifier(cfg Config) service.RecoveryNotifier {
	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}
}

// Send delivers a single plain-text message. The context deadline is
// honored before dialing; gomail itself has no context support, so a
// request that is already cancelled never opens a connection.
func (n *smtpNotifier) Send(ctx context.Context, address, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "recovery send cancelled")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", address)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		return errors.Wrap(err, "failed to deliver recovery mail")
	}

	return nil
}
