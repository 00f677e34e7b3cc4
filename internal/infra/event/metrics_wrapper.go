package event

import (
	"context"
	"time"

	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/DioGolang/GoEvents/pkg/metrics"
)

type metricsHandler struct {
	metrics     metrics.Metrics
	handlerName string
	next        events.EventHandler
}

// WrapMetrics records the outcome and latency of every call to next.
func WrapMetrics(m metrics.Metrics, handlerName string, next events.EventHandler) events.EventHandler {
	return &metricsHandler{metrics: m, handlerName: handlerName, next: next}
}

func (h *metricsHandler) Handle(ctx context.Context, evt events.Event) error {
	start := time.Now()
	err := h.next.Handle(ctx, evt)
	h.metrics.RecordHandlerExecution(h.handlerName, err == nil, time.Since(start))
	return err
}
