package customer

import (
	"context"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/event"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/google/uuid"
)

type CreateUseCaseImpl struct {
	UnitOfWork      outbound.UnitOfWork
	EventDispatcher events.EventDispatcher
}

func NewCreateCustomerUseCase(uow outbound.UnitOfWork, dispatcher events.EventDispatcher) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		UnitOfWork:      uow,
		EventDispatcher: dispatcher,
	}
}

// Execute stores the customer and notifies CustomerCreatedEvent in the same
// transaction, so a failing handler leaves nothing behind.
func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (CreateOutput, error) {
	var opts []entity.CustomerOption
	if input.Address != nil {
		address, err := valueobject.NewAddress(input.Address.Street, input.Address.Number, input.Address.Zip, input.Address.City)
		if err != nil {
			return CreateOutput{}, err
		}
		opts = append(opts, entity.WithAddress(address))
	}

	customer, err := entity.NewCustomer(uuid.NewString(), input.Name, opts...)
	if err != nil {
		return CreateOutput{}, err
	}

	err = uc.UnitOfWork.Do(ctx, func(provider outbound.RepositoryProvider) error {
		if err := provider.Customer().Create(ctx, customer); err != nil {
			return err
		}
		return uc.EventDispatcher.Dispatch(ctx, event.NewCustomerCreated(event.CustomerCreatedPayload{
			ID:   customer.ID(),
			Name: customer.Name(),
		}))
	})
	if err != nil {
		return CreateOutput{}, err
	}

	output := CreateOutput{
		ID:   customer.ID(),
		Name: customer.Name(),
	}
	if !customer.Address().IsZero() {
		a := toAddressOutput(customer.Address())
		output.Address = &a
	}
	return output, nil
}

func toAddressOutput(a valueobject.Address) AddressOutput {
	return AddressOutput{
		Street: a.Street(),
		Number: a.Number(),
		Zip:    a.Zip(),
		City:   a.City(),
	}
}
