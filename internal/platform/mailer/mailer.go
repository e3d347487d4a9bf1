package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional email over SMTP. It satisfies the
// identity context's Notifier port.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	logger *slog.Logger
}

func New(host string, port int, username string, password string, from string, logger *slog.Logger) *Mailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		logger: logger,
	}
}

func (m *Mailer) SendWelcome(_ context.Context, email string, fullName string) error {
	body := fmt.Sprintf(
		"Hi %s,\r\n\r\nYour Pawsure account is ready. You can sign in and track your applications and claims any time.\r\n\r\nThe Pawsure team",
		fullName,
	)
	return m.send(email, "Welcome to Pawsure", body)
}

func (m *Mailer) SendTemporaryCredentials(_ context.Context, email string, tempPassword string, verifyURL string) error {
	body := fmt.Sprintf(
		"Hello,\r\n\r\nAn application was submitted on your behalf. Sign in with the temporary password below and verify your email within 24 hours.\r\n\r\nTemporary password: %s\r\nVerify: %s\r\n\r\nThe Pawsure team",
		tempPassword,
		verifyURL,
	)
	return m.send(email, "Your Pawsure account", body)
}

func (m *Mailer) send(to string, subject string, body string) error {
	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(message); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	m.logger.Info("mail sent",
		"event", "mail_sent",
		"module", "platform/mailer",
		"to", to,
		"subject", subject,
	)
	return nil
}
