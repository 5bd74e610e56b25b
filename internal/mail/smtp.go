package mail

import (
	"context"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// SMTPMailer delivers mail over SMTP with optional PLAIN authentication.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
}

// NewSMTPMailer creates a mailer for the given SMTP server
func NewSMTPMailer(host, port, username, password, from string) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

// SendPasswordReset sends the reset link to the admin's address
func (m *SMTPMailer) SendPasswordReset(_ context.Context, to, resetLink string) error {
	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", m.from)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	msg.WriteString("Subject: Reset your admin password\r\n")
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	fmt.Fprintf(&msg, "A password reset was requested for your account.\r\n\r\n")
	fmt.Fprintf(&msg, "Open the link below to choose a new password. The link expires in one hour.\r\n\r\n%s\r\n\r\n", resetLink)
	msg.WriteString("If you did not request a reset, ignore this message.\r\n")

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	addr := net.JoinHostPort(m.host, m.port)
	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return fmt.Errorf("failed to send password reset mail: %w", err)
	}

	return nil
}
