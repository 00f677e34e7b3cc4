package product

import (
	"context"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/event"
	"github.com/DioGolang/GoEvents/pkg/events"
	"github.com/google/uuid"
)

type CreateUseCaseImpl struct {
	UnitOfWork      outbound.UnitOfWork
	EventDispatcher events.EventDispatcher
}

func NewCreateProductUseCase(uow outbound.UnitOfWork, dispatcher events.EventDispatcher) *CreateUseCaseImpl {
	return &CreateUseCaseImpl{
		UnitOfWork:      uow,
		EventDispatcher: dispatcher,
	}
}

func (uc *CreateUseCaseImpl) Execute(ctx context.Context, input CreateInput) (CreateOutput, error) {
	product, err := entity.NewProduct(uuid.NewString(), input.Name, input.Description, input.Price)
	if err != nil {
		return CreateOutput{}, err
	}

	err = uc.UnitOfWork.Do(ctx, func(provider outbound.RepositoryProvider) error {
		if err := provider.Product().Create(ctx, product); err != nil {
			return err
		}
		return uc.EventDispatcher.Dispatch(ctx, event.NewProductCreated(event.ProductCreatedPayload{
			ID:          product.ID(),
			Name:        product.Name(),
			Description: product.Description(),
			Price:       product.Price(),
		}))
	})
	if err != nil {
		return CreateOutput{}, err
	}

	return CreateOutput{
		ID:          product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		Price:       product.Price(),
	}, nil
}
