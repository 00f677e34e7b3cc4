package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
)

type CustomerRepositoryImpl struct {
	*Queries
}

func NewCustomerRepository(db DBTX) *CustomerRepositoryImpl {
	return &CustomerRepositoryImpl{Queries: New(db)}
}

func (r *CustomerRepositoryImpl) Create(ctx context.Context, customer *entity.Customer) error {
	return r.CreateCustomer(ctx, toCustomerRow(customer))
}

func (r *CustomerRepositoryImpl) Update(ctx context.Context, customer *entity.Customer) error {
	n, err := r.UpdateCustomer(ctx, toCustomerRow(customer))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("customer %s: %w", customer.ID(), outbound.ErrNotFound)
	}
	return nil
}

func (r *CustomerRepositoryImpl) Find(ctx context.Context, id string, opts ...entity.CustomerOption) (*entity.Customer, error) {
	row, err := r.GetCustomer(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("customer %s: %w", id, outbound.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return row.toEntity(opts...)
}

func (r *CustomerRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.ListCustomers(ctx)
	if err != nil {
		return nil, err
	}
	customers := make([]*entity.Customer, 0, len(rows))
	for _, row := range rows {
		c, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

func toCustomerRow(c *entity.Customer) CustomerRow {
	a := c.Address()
	return CustomerRow{
		ID:           c.ID(),
		Name:         c.Name(),
		Street:       a.Street(),
		Number:       a.Number(),
		Zipcode:      a.Zip(),
		City:         a.City(),
		Active:       c.IsActive(),
		RewardPoints: c.RewardPoints(),
	}
}

func (row CustomerRow) toEntity(opts ...entity.CustomerOption) (*entity.Customer, error) {
	state := []entity.CustomerOption{
		entity.WithActive(row.Active),
		entity.WithRewardPoints(row.RewardPoints),
	}
	if row.Street != "" {
		address, err := valueobject.NewAddress(row.Street, row.Number, row.Zipcode, row.City)
		if err != nil {
			return nil, fmt.Errorf("customer %s has an invalid stored address: %w", row.ID, err)
		}
		state = append(state, entity.WithAddress(address))
	}
	return entity.NewCustomer(row.ID, row.Name, append(state, opts...)...)
}
