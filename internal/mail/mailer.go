package mail

import (
	"context"
	"log"
)

// Mailer sends transactional mail for the admin account.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetLink string) error
}

// LogMailer writes the reset link to the application log instead of sending
// mail. It is the default driver for development environments without an
// SMTP server.
type LogMailer struct{}

// SendPasswordReset logs the reset link
func (LogMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	log.Printf("Password reset link for %s: %s", to, resetLink)
	return nil
}
