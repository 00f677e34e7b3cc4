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

// InstrumentedDispatcher adds a span, a log line and a counter around each
// Dispatch. Errors from handlers are returned unchanged.
type InstrumentedDispatcher struct {
	events.EventDispatcher
	log     logger.Logger
	metrics metrics.Metrics
	tracer  trace.Tracer
}

func NewInstrumentedDispatcher(next events.EventDispatcher, log logger.Logger, m metrics.Metrics, tracer trace.Tracer) *InstrumentedDispatcher {
	return &InstrumentedDispatcher{
		EventDispatcher: next,
		log:             log,
		metrics:         m,
		tracer:          tracer,
	}
}

func (d *InstrumentedDispatcher) Dispatch(ctx context.Context, evt events.Event) error {
	if evt == nil {
		return nil
	}
	name := evt.GetName()
	ctx, span := d.tracer.Start(ctx, "dispatch "+name, trace.WithAttributes(
		attribute.String("event.name", name),
	))
	defer span.End()

	handlers, _ := d.EventDispatcher.HandlersFor(name)
	span.SetAttributes(attribute.Int("event.handlers", len(handlers)))

	err := d.EventDispatcher.Dispatch(ctx, evt)
	d.metrics.RecordEventDispatched(name, err == nil)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		d.log.Warn(ctx, "Event dispatch aborted by handler error",
			logger.String("event", name),
			logger.WithError(err),
		)
		return err
	}

	d.log.Debug(ctx, "Event dispatched",
		logger.String("event", name),
		logger.Int("handlers", len(handlers)),
	)
	return nil
}
