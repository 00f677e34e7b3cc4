package handler

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/domain/event"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
)

type Email struct {
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

// LogMailer writes emails to the log instead of delivering them.
type LogMailer struct {
	log logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(ctx context.Context, email Email) error {
	m.log.Info(ctx, "Sending email",
		logger.String("subject", email.Subject),
		logger.String("body", email.Body),
	)
	return nil
}

type SendEmailWhenProductIsCreatedHandler struct {
	mailer Mailer
}

func NewSendEmailWhenProductIsCreatedHandler(mailer Mailer) *SendEmailWhenProductIsCreatedHandler {
	return &SendEmailWhenProductIsCreatedHandler{mailer: mailer}
}

func (h *SendEmailWhenProductIsCreatedHandler) Handle(ctx context.Context, evt events.Event) error {
	created, ok := evt.(*event.ProductCreated)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEvent, evt.GetName())
	}

	p := created.Payload()
	email := Email{
		Subject: fmt.Sprintf("New product: %s", p.Name),
		Body: fmt.Sprintf("%s\n\n%s\nPrice: %.2f\nCreated at: %s",
			p.Name, p.Description, p.Price, created.GetDateTime().Format("2006-01-02 15:04:05")),
	}
	if err := h.mailer.Send(ctx, email); err != nil {
		return fmt.Errorf("send product created email: %w", err)
	}
	return nil
}
