package service

import "context"

// Notifier delivers the password reset message. The core only produces
// the token and URL; delivery is a collaborator whose failure must
// never crash the reset flow or leak its internal cause to the caller.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, htmlBody, textBody string) error
}
