// Package mail implements the Notifier domain service over SMTP.
package mail

import (
	"context"

	"portal/config"
	"portal/internal/domain/service"

	"github.com/pkg/errors"
	"gopkg.in/gomail.v2"
)

// smtpNotifier delivers reset messages through a configured SMTP relay.
// Each Send dials a fresh connection; reset traffic is far too sparse
// to justify connection pooling.
type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier is the constructor for smtpNotifier.
func NewSMTPNotifier(cfg *config.Config) (service.Notifier, error) {
	if cfg.SMTP == nil {
		return nil, errors.New("smtp configuration is required")
	}

	return &smtpNotifier{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
		from:   cfg.SMTP.From,
	}, nil
}

// Send delivers a multipart message with plain and HTML alternatives.
// The context deadline is honored before dialing; gomail itself does
// not take a context.
func (n *smtpNotifier) Send(ctx context.Context, recipient, subject, htmlBody, textBody string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "send canceled before dialing")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", n.from)
	message.SetHeader("To", recipient)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", textBody)
	message.AddAlternative("text/html", htmlBody)

	if err := n.dialer.DialAndSend(message); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
