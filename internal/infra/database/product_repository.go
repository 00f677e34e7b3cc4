package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
)

type ProductRepositoryImpl struct {
	*Queries
}

func NewProductRepository(db DBTX) *ProductRepositoryImpl {
	return &ProductRepositoryImpl{Queries: New(db)}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *entity.Product) error {
	return r.CreateProduct(ctx, toProductRow(product))
}

func (r *ProductRepositoryImpl) Update(ctx context.Context, product *entity.Product) error {
	n, err := r.UpdateProduct(ctx, toProductRow(product))
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", product.ID(), outbound.ErrNotFound)
	}
	return nil
}

func (r *ProductRepositoryImpl) Find(ctx context.Context, id string) (*entity.Product, error) {
	row, err := r.GetProduct(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %s: %w", id, outbound.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return entity.NewProduct(row.ID, row.Name, row.Description, row.Price)
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		p, err := entity.NewProduct(row.ID, row.Name, row.Description, row.Price)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func toProductRow(p *entity.Product) ProductRow {
	return ProductRow{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Price:       p.Price(),
	}
}
