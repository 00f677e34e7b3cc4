package customer

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
	"github.com/DioGolang/GoEvents/pkg/events"
)

type ChangeAddressUseCaseImpl struct {
	UnitOfWork            outbound.UnitOfWork
	AddressChangedHandler events.EventHandler
}

func NewChangeAddressUseCase(uow outbound.UnitOfWork, handler events.EventHandler) *ChangeAddressUseCaseImpl {
	return &ChangeAddressUseCaseImpl{
		UnitOfWork:            uow,
		AddressChangedHandler: handler,
	}
}

func (uc *ChangeAddressUseCaseImpl) Execute(ctx context.Context, input ChangeAddressInput) (ChangeAddressOutput, error) {
	address, err := valueobject.NewAddress(input.Address.Street, input.Address.Number, input.Address.Zip, input.Address.City)
	if err != nil {
		return ChangeAddressOutput{}, err
	}

	var customer *entity.Customer
	err = uc.UnitOfWork.Do(ctx, func(provider outbound.RepositoryProvider) error {
		repo := provider.Customer()

		var opts []entity.CustomerOption
		if uc.AddressChangedHandler != nil {
			opts = append(opts, entity.WithAddressChangedHandler(uc.AddressChangedHandler))
		}
		customer, err = repo.Find(ctx, input.ID, opts...)
		if err != nil {
			return fmt.Errorf("customer not found: %w", err)
		}

		if err := customer.ChangeAddress(ctx, address); err != nil {
			return err
		}

		if err := repo.Update(ctx, customer); err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}
		return nil
	})
	if err != nil {
		return ChangeAddressOutput{}, err
	}

	return ChangeAddressOutput{
		ID:      customer.ID(),
		Name:    customer.Name(),
		Address: toAddressOutput(customer.Address()),
	}, nil
}
