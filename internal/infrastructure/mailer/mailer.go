// Package mailer sends reminder emails over SMTP.
package mailer

import (
	"fmt"

	"rudereminder/internal/pkg/logger"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings. An empty Host disables sending.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends reminder emails over SMTP.
type Mailer struct {
	from string
	log  logger.Logger
	send func(...*gomail.Message) error
}

// New creates a Mailer from cfg.
func New(cfg Config, log logger.Logger) *Mailer {
	m := &Mailer{from: cfg.From, log: log}
	if cfg.Host != "" {
		m.send = gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password).DialAndSend
	}
	return m
}

// Enabled reports whether an SMTP host is configured.
func (m *Mailer) Enabled() bool {
	return m.send != nil
}

// Send delivers a multipart message with a plain-text body and an HTML alternative.
func (m *Mailer) Send(to, subject, html, text string) error {
	if !m.Enabled() {
		m.log.Debug("SMTP not configured, skipping email", "to", to)
		return fmt.Errorf("smtp transport not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", text)
	msg.AddAlternative("text/html", html)

	if err := m.send(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	m.log.Info("Email sent", "to", to, "subject", subject)
	return nil
}
