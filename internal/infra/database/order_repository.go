package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
)

// OrderRepositoryImpl writes an order and its items with several statements;
// run it inside UnitOfWork.Do to make them atomic.
type OrderRepositoryImpl struct {
	*Queries
}

func NewOrderRepository(db DBTX) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{Queries: New(db)}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *entity.Order) error {
	err := r.CreateOrder(ctx, OrderRow{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
	})
	if err != nil {
		return err
	}
	return r.createItems(ctx, order)
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *entity.Order) error {
	n, err := r.UpdateOrder(ctx, OrderRow{
		ID:         order.ID(),
		CustomerID: order.CustomerID(),
		Total:      order.Total(),
	})
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("order %s: %w", order.ID(), outbound.ErrNotFound)
	}
	if err := r.DeleteOrderItems(ctx, order.ID()); err != nil {
		return err
	}
	return r.createItems(ctx, order)
}

func (r *OrderRepositoryImpl) createItems(ctx context.Context, order *entity.Order) error {
	for _, item := range order.Items() {
		err := r.CreateOrderItem(ctx, OrderItemRow{
			ID:        item.ID(),
			OrderID:   order.ID(),
			ProductID: item.ProductID(),
			Name:      item.Name(),
			Price:     item.Price(),
			Quantity:  item.Quantity(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *OrderRepositoryImpl) Find(ctx context.Context, id string) (*entity.Order, error) {
	row, err := r.GetOrder(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %s: %w", id, outbound.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return r.toEntity(ctx, row)
}

func (r *OrderRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Order, error) {
	rows, err := r.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	orders := make([]*entity.Order, 0, len(rows))
	for _, row := range rows {
		o, err := r.toEntity(ctx, row)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

func (r *OrderRepositoryImpl) toEntity(ctx context.Context, row OrderRow) (*entity.Order, error) {
	itemRows, err := r.ListOrderItems(ctx, row.ID)
	if err != nil {
		return nil, err
	}
	items := make([]*entity.OrderItem, 0, len(itemRows))
	for _, ir := range itemRows {
		item, err := entity.NewOrderItem(ir.ID, ir.Name, ir.Price, ir.ProductID, ir.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return entity.NewOrder(row.ID, row.CustomerID, items)
}
