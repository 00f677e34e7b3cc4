package handler

import (
	"context"

	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
)

type ConsoleLogFirstHandler struct {
	log logger.Logger
}

func NewConsoleLogFirstHandler(log logger.Logger) *ConsoleLogFirstHandler {
	return &ConsoleLogFirstHandler{log: log}
}

func (h *ConsoleLogFirstHandler) Handle(ctx context.Context, evt events.Event) error {
	h.log.Info(ctx, "This is the first console log of event: "+evt.GetName(),
		logger.String("event", evt.GetName()),
	)
	return nil
}

type ConsoleLogSecondHandler struct {
	log logger.Logger
}

func NewConsoleLogSecondHandler(log logger.Logger) *ConsoleLogSecondHandler {
	return &ConsoleLogSecondHandler{log: log}
}

func (h *ConsoleLogSecondHandler) Handle(ctx context.Context, evt events.Event) error {
	h.log.Info(ctx, "This is the second console log of event: "+evt.GetName(),
		logger.String("event", evt.GetName()),
	)
	return nil
}
