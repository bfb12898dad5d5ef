package mailer

import (
	"bytes"
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"myevent-api/core/logger"
)

type EmailMessage struct {
	To      []string
	Subject string
	Body    string
	IsHTML  bool
}

type Mailer interface {
	Send(ctx context.Context, msg EmailMessage) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type SMTPMailer struct {
	cfg SMTPConfig
}

// New returns an SMTP mailer, or a mailer that only logs when no host is set.
func New(cfg SMTPConfig) Mailer {
	if cfg.Host == "" {
		logger.Warn("Mailer:New:No SMTP host configured, emails will only be logged")
		return LogMailer{}
	}
	return &SMTPMailer{cfg: cfg}
}

// Send uses smtp.SendMail, which upgrades to STARTTLS when the server offers it.
func (m *SMTPMailer) Send(ctx context.Context, msg EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)

	if err := smtp.SendMail(addr, auth, m.cfg.Username, msg.To, BuildMessage(m.cfg.From, msg)); err != nil {
		logger.Error("SMTPMailer:Send:Error:", "to", msg.To, "error", err)
		return err
	}
	return nil
}

func BuildMessage(from string, msg EmailMessage) []byte {
	contentType := "text/plain"
	if msg.IsHTML {
		contentType = "text/html"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(msg.To, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", msg.Subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: %s; charset=\"UTF-8\"\r\n\r\n", contentType)
	buf.WriteString(msg.Body)
	return buf.Bytes()
}

type LogMailer struct{}

func (LogMailer) Send(_ context.Context, msg EmailMessage) error {
	logger.Info("LogMailer:Send", "to", msg.To, "subject", msg.Subject)
	return nil
}
