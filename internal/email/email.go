// Package email delivers transactional mail such as verification codes.
package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"alcancia/internal/config"
	"alcancia/internal/logger"
)

// Mailer sends transactional messages. Services depend on this interface so
// tests can capture outgoing mail.
type Mailer interface {
	SendVerificationCode(to, code string) error
}

// SMTPMailer sends mail through an SMTP relay using gomail.
type SMTPMailer struct {
	cfg *config.Config
}

// NewSMTPMailer creates a mailer from the application configuration.
func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// SendVerificationCode emails a verification code. When SMTP is disabled the
// code is only logged, which keeps local development free of a mail relay.
func (m *SMTPMailer) SendVerificationCode(to, code string) error {
	if !m.cfg.SMTPEnabled {
		logger.Get().Infow("SMTP disabled, skipping verification email", "to", to, "code", code)
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.SMTPFrom)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Código de verificación")
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Tu código de verificación es:</p><h2>%s</h2><p>Este código expira en 60 minutos.</p>",
		code,
	))

	dialer := gomail.NewDialer(m.cfg.SMTPHost, m.cfg.SMTPPort, m.cfg.SMTPUsername, m.cfg.SMTPPassword)
	if err := dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending verification email: %w", err)
	}

	logger.Get().Infow("Verification email sent", "to", to)
	return nil
}
