package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
)

type loggingHandler struct {
	log         logger.Logger
	handlerName string
	next        events.EventHandler
}

func WrapLogging(log logger.Logger, handlerName string, next events.EventHandler) events.EventHandler {
	return &loggingHandler{log: log, handlerName: handlerName, next: next}
}

func (h *loggingHandler) Handle(ctx context.Context, evt events.Event) error {
	start := time.Now()
	err := h.next.Handle(ctx, evt)
	if err != nil {
		h.log.Warn(ctx, "Event handler failed",
			logger.String("handler", h.handlerName),
			logger.String("event", evt.GetName()),
			logger.Duration("latency", time.Since(start)),
			logger.WithError(err),
		)
		return err
	}

	h.log.Debug(ctx, "Event handled",
		logger.String("handler", h.handlerName),
		logger.String("event", evt.GetName()),
		logger.Duration("latency", time.Since(start)),
	)
	return nil
}
