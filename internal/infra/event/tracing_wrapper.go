package event

import (
	"context"

	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/logger"
	"github.com/DioGolang/GoEvents/pkg/metrics"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

type tracingHandler struct {
	tracer      trace.Tracer
	handlerName string
	next        events.EventHandler
}

func WrapTracing(tracer trace.Tracer, handlerName string, next events.EventHandler) events.EventHandler {
	return &tracingHandler{tracer: tracer, handlerName: handlerName, next: next}
}

func (h *tracingHandler) Handle(ctx context.Context, evt events.Event) error {
	ctx, span := h.tracer.Start(ctx, "handle "+evt.GetName(), trace.WithAttributes(
		attribute.String("event.name", evt.GetName()),
		attribute.String("event.handler", h.handlerName),
	))
	defer span.End()

	err := h.next.Handle(ctx, evt)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

// Instrument applies tracing, logging and metrics, in that order from the
// outside in.
func Instrument(tracer trace.Tracer, log logger.Logger, m metrics.Metrics, handlerName string, next events.EventHandler) events.EventHandler {
	return WrapTracing(tracer, handlerName,
		WrapLogging(log, handlerName,
			WrapMetrics(m, handlerName, next)))
}
