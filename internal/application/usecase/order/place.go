package order

import (
	"context"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/google/uuid"
)

type PlaceUseCaseImpl struct {
	UnitOfWork outbound.UnitOfWork
}

func NewPlaceOrderUseCase(uow outbound.UnitOfWork) *PlaceUseCaseImpl {
	return &PlaceUseCaseImpl{UnitOfWork: uow}
}

// Execute prices the items from the product catalog, stores the order and
// credits the customer with half of the order total in reward points.
func (uc *PlaceUseCaseImpl) Execute(ctx context.Context, input PlaceInput) (PlaceOutput, error) {
	if len(input.Items) == 0 {
		return PlaceOutput{}, entity.ErrItemsAreRequired
	}

	var output PlaceOutput
	err := uc.UnitOfWork.Do(ctx, func(provider outbound.RepositoryProvider) error {
		customer, err := provider.Customer().Find(ctx, input.CustomerID)
		if err != nil {
			return fmt.Errorf("customer not found: %w", err)
		}

		items := make([]*entity.OrderItem, 0, len(input.Items))
		for _, in := range input.Items {
			product, err := provider.Product().Find(ctx, in.ProductID)
			if err != nil {
				return fmt.Errorf("product %s not found: %w", in.ProductID, err)
			}
			item, err := entity.NewOrderItem(uuid.NewString(), product.Name(), product.Price(), product.ID(), in.Quantity)
			if err != nil {
				return err
			}
			items = append(items, item)
		}

		order, err := entity.NewOrder(uuid.NewString(), customer.ID(), items)
		if err != nil {
			return err
		}

		if err := customer.AddRewardPoints(int(order.Total() / 2)); err != nil {
			return err
		}
		if err := provider.Order().Create(ctx, order); err != nil {
			return fmt.Errorf("failed to save order: %w", err)
		}
		if err := provider.Customer().Update(ctx, customer); err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}

		output = PlaceOutput{
			ID:           order.ID(),
			CustomerID:   customer.ID(),
			Total:        order.Total(),
			RewardPoints: customer.RewardPoints(),
		}
		return nil
	})
	if err != nil {
		return PlaceOutput{}, err
	}
	return output, nil
}
