package product

import (
	"context"
	"time"

	"github.com/DioGolang/GoEvents/pkg/metrics"
)

type CreateProductMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateProductMetricsDecorator) Execute(ctx context.Context, input CreateInput) (CreateOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateProduct", err == nil, time.Since(start))
	status := "success"
	if err != nil {
		status = "failure"
	}
	d.Metrics.RecordProductCreated(status)
	return output, err
}
