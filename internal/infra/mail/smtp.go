package mail

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DioGolang/GoEvents/internal/domain/event/handler"
	gomail "github.com/wneessen/go-mail"
)

var ErrNoRecipients = errors.New("no recipients configured")

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	// To is a comma separated list of addresses.
	To string
}

// SMTPMailer delivers handler emails through an SMTP server.
type SMTPMailer struct {
	config SMTPConfig
}

func NewSMTPMailer(config SMTPConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(ctx context.Context, email handler.Email) error {
	msg, err := m.buildMessage(email)
	if err != nil {
		return err
	}

	c, err := m.newClient()
	if err != nil {
		return err
	}
	return c.DialAndSendWithContext(ctx, msg)
}

// Ping opens and closes a connection to the relay. Used as a health check.
func (m *SMTPMailer) Ping(ctx context.Context) error {
	c, err := m.newClient()
	if err != nil {
		return err
	}
	if err := c.DialWithContext(ctx); err != nil {
		return fmt.Errorf("failed to reach smtp relay: %w", err)
	}
	return c.Close()
}

func (m *SMTPMailer) newClient() (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(m.config.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.config.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.config.Username),
			gomail.WithPassword(m.config.Password),
		)
	}

	c, err := gomail.NewClient(m.config.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}
	return c, nil
}

func (m *SMTPMailer) buildMessage(email handler.Email) (*gomail.Msg, error) {
	msg := gomail.NewMsg()
	if err := msg.From(m.config.From); err != nil {
		return nil, fmt.Errorf("invalid from address: %w", err)
	}

	recipients := 0
	for _, r := range strings.Split(m.config.To, ",") {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		if err := msg.AddTo(r); err != nil {
			return nil, fmt.Errorf("invalid recipient %q: %w", r, err)
		}
		recipients++
	}
	if recipients == 0 {
		return nil, ErrNoRecipients
	}

	msg.Subject(email.Subject)
	msg.SetBodyString(gomail.TypeTextPlain, email.Body)
	return msg, nil
}
