package adapter

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/vnshop/identity/internal/config"
	"github.com/vnshop/identity/internal/logger"
)

// smtpMailSender implements [MailSender] over plain SMTP with optional
// AUTH PLAIN. The message is a minimal text/plain confirmation carrying
// the verification link.
type smtpMailSender struct {
	addr string
	auth smtp.Auth
	from string
}

// NewMailSender constructs a [MailSender] from cfg. When no SMTP address
// is configured a log-only sender is returned so local development does
// not require a mail server.
func NewMailSender(cfg config.Mail, log *logger.Logger) MailSender {
	if cfg.SMTPAddress == "" {
		log.Warn().Msg("no SMTP address configured, confirmation mails will only be logged")
		return &logMailSender{logger: log}
	}

	var auth smtp.Auth
	if cfg.Username != "" {
		host := cfg.SMTPAddress
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", cfg.Username, cfg.Password, host)
	}

	return &smtpMailSender{
		addr: cfg.SMTPAddress,
		auth: auth,
		from: cfg.From,
	}
}

// SendConfirmation delivers the confirmation email. The ctx parameter is
// accepted for interface symmetry; net/smtp does not support cancellation
// mid-session, so the dispatch worker bounds the call with its own
// goroutine lifecycle instead.
func (s *smtpMailSender) SendConfirmation(_ context.Context, toEmail, verificationLink string) error {
	subject := "Confirm your shop email address"
	body := fmt.Sprintf(
		"Thank you for creating a shop account.\r\n\r\n"+
			"Please confirm your email address %s by opening the link below:\r\n\r\n%s\r\n",
		toEmail, verificationLink,
	)

	msg := strings.Join([]string{
		"From: " + s.from,
		"To: " + toEmail,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"utf-8\"",
		"",
		body,
	}, "\r\n")

	if err := smtp.SendMail(s.addr, s.auth, s.from, []string{toEmail}, []byte(msg)); err != nil {
		return fmt.Errorf("smtp send to %s: %w", toEmail, err)
	}

	return nil
}

// logMailSender is the development stand-in for [smtpMailSender]: it
// records the would-be delivery and succeeds.
type logMailSender struct {
	logger *logger.Logger
}

func (s *logMailSender) SendConfirmation(_ context.Context, toEmail, verificationLink string) error {
	s.logger.Info().
		Str("to", toEmail).
		Str("link", verificationLink).
		Msg("confirmation mail (log-only sender)")
	return nil
}
