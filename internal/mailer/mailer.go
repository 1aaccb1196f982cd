// Package mailer defines the outbound-email boundary. Actual delivery is an
// external collaborator concern; this package only specifies the capability
// and ships a log-only implementation for development.
package mailer

import (
	"context"
	"log"
)

// Sender delivers magic-link tokens to users.
type Sender interface {
	SendMagicLink(ctx context.Context, email, token string) error
}

// LogSender writes magic links to the process log instead of sending email.
type LogSender struct{}

// SendMagicLink logs the token for manual use.
func (LogSender) SendMagicLink(_ context.Context, email, token string) error {
	log.Printf("magic link for %s: token=%s", email, token)
	return nil
}
