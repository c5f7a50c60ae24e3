package service

import (
	"oncall-roster/config"

	"gopkg.in/gomail.v2"
)

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Mailer dispatches transactional email. Implementations report
// per-message success or failure; callers decide how to aggregate.
type Mailer interface {
	Send(msg *Message) error
}

type smtpMailer struct {
	config config.SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPMailer(cfg config.SMTPConfig) Mailer {
	return &smtpMailer{
		config: cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (m *smtpMailer) Send(msg *Message) error {
	mail := gomail.NewMessage()
	mail.SetHeader("From", m.config.From)
	mail.SetHeader("To", msg.To)
	mail.SetHeader("Subject", msg.Subject)
	mail.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		mail.AddAlternative("text/html", msg.HTML)
	}

	return m.dialer.DialAndSend(mail)
}
