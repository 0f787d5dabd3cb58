package alert

import (
	"context"
	"fmt"
	"strconv"

	"github.com/wneessen/go-mail"

	"github.com/inventoryops/warehouse-api/pkg/logger"
)

// SMTPConfig holds mail transport configuration
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// SMTPSender sends messages over SMTP
type SMTPSender struct {
	cfg SMTPConfig
}

// NewSMTPSender creates an SMTP sender
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg}
}

// Send delivers a single message. A client is dialed per message; the
// service sends too few mails to justify a persistent connection.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()

	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	m.Subject(msg.Subject)

	if msg.HTML {
		m.SetBodyString(mail.TypeTextHTML, msg.Body)
	} else {
		m.SetBodyString(mail.TypeTextPlain, msg.Body)
	}

	port, err := strconv.Atoi(s.cfg.Port)
	if err != nil {
		port = 587
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return fmt.Errorf("failed to create mail client: %w", err)
	}

	logger.Info(ctx).
		Str("to", msg.To).
		Str("subject", msg.Subject).
		Msg("Sending mail")

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}
	return nil
}
