package order

import (
	"context"
	"time"

	"github.com/DioGolang/GoEvents/pkg/metrics"
)

type PlaceOrderMetricsDecorator struct {
	Next    PlaceUseCase
	Metrics metrics.Metrics
}

func (d *PlaceOrderMetricsDecorator) Execute(ctx context.Context, input PlaceInput) (PlaceOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("PlaceOrder", err == nil, time.Since(start))
	return output, err
}
