package notifications

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/arunvel/stockkeep-backend/pkg/config"
)

// Message is a fully-resolved outbound email.
type Message struct {
	FromName    string
	To          []string
	Subject     string
	TextBody    string
	Attachments []Attachment
}

// Attachment references a file on local disk to attach.
type Attachment struct {
	Filename string
	Path     string
}

// Mailer delivers messages. The SMTP implementation is swapped for a fake in
// tests.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// DisabledMailer stands in for the SMTP mailer when no SMTP settings are
// configured. The API keeps running; every dispatch fails at call time.
type DisabledMailer struct{}

// Send always fails.
func (DisabledMailer) Send(context.Context, Message) error {
	return fmt.Errorf("smtp is not configured")
}

// SMTPMailer delivers mail over implicit-TLS SMTP using the configured
// credentials. The configured username doubles as the envelope sender.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

// NewSMTPMailer validates the config and returns a mailer.
func NewSMTPMailer(cfg config.SMTPConfig) (*SMTPMailer, error) {
	if !cfg.Configured() {
		return nil, fmt.Errorf("smtp is not configured")
	}
	return &SMTPMailer{cfg: cfg}, nil
}

// Send connects, authenticates and delivers the message.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return fmt.Errorf("no recipients")
	}

	out := mail.NewMsg()
	if err := out.FromFormat(msg.FromName, m.cfg.Username); err != nil {
		return fmt.Errorf("set sender: %w", err)
	}
	if err := out.To(msg.To...); err != nil {
		return fmt.Errorf("set recipients: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextPlain, msg.TextBody)
	for _, att := range msg.Attachments {
		out.AttachFile(att.Path, mail.WithFileName(att.Filename))
	}

	client, err := mail.NewClient(m.cfg.Host,
		mail.WithPort(m.cfg.Port),
		mail.WithSSL(),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.Username),
		mail.WithPassword(m.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}
