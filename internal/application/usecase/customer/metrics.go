package customer

import (
	"context"
	"time"

	"github.com/DioGolang/GoEvents/pkg/metrics"
)

type CreateCustomerMetricsDecorator struct {
	Next    CreateUseCase
	Metrics metrics.Metrics
}

func (d *CreateCustomerMetricsDecorator) Execute(ctx context.Context, input CreateInput) (CreateOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("CreateCustomer", err == nil, time.Since(start))
	status := "success"
	if err != nil {
		status = "failure"
	}
	d.Metrics.RecordCustomerCreated(status)
	return output, err
}

type ChangeAddressMetricsDecorator struct {
	Next    ChangeAddressUseCase
	Metrics metrics.Metrics
}

func (d *ChangeAddressMetricsDecorator) Execute(ctx context.Context, input ChangeAddressInput) (ChangeAddressOutput, error) {
	start := time.Now()
	output, err := d.Next.Execute(ctx, input)
	d.Metrics.RecordUseCaseExecution("ChangeCustomerAddress", err == nil, time.Since(start))
	return output, err
}
