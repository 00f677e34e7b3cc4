package handler

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/domain/event"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
)

type ConsoleLogAddressChangedHandler struct {
	log logger.Logger
}

func NewConsoleLogAddressChangedHandler(log logger.Logger) *ConsoleLogAddressChangedHandler {
	return &ConsoleLogAddressChangedHandler{log: log}
}

func (h *ConsoleLogAddressChangedHandler) Handle(ctx context.Context, evt events.Event) error {
	changed, ok := evt.(*event.CustomerAddressChanged)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnexpectedEvent, evt.GetName())
	}

	p := changed.Payload()
	h.log.Info(ctx, fmt.Sprintf("Customer address: %s, %s changed to: %s", p.CustomerID, p.Name, p.Address),
		logger.String("customer_id", p.CustomerID),
		logger.String("address", p.Address.String()),
	)
	return nil
}
