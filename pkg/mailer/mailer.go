package mailer

import (
	"gopkg.in/gomail.v2"
)

// Config holds SMTP settings for the email channel.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends HTML mail over SMTP.
type Mailer interface {
	Send(to, subject, htmlBody, attachmentPath string) error
}

type mailer struct {
	cfg    Config
	dialer *gomail.Dialer
}

// New creates a Mailer from the given SMTP configuration.
func New(cfg Config) Mailer {
	return &mailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send delivers one message. attachmentPath may be empty.
func (m *mailer) Send(to, subject, htmlBody, attachmentPath string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)
	if attachmentPath != "" {
		msg.Attach(attachmentPath)
	}
	return m.dialer.DialAndSend(msg)
}
