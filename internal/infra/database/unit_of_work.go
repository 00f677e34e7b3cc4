package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
)

type RepositoryProviderImpl struct {
	queries *Queries
}

func (p *RepositoryProviderImpl) Customer() outbound.CustomerRepository {
	return &CustomerRepositoryImpl{Queries: p.queries}
}

func (p *RepositoryProviderImpl) Product() outbound.ProductRepository {
	return &ProductRepositoryImpl{Queries: p.queries}
}

func (p *RepositoryProviderImpl) Order() outbound.OrderRepository {
	return &OrderRepositoryImpl{Queries: p.queries}
}

type UnitOfWorkImpl struct {
	db *sql.DB
}

func NewUnitOfWork(db *sql.DB) *UnitOfWorkImpl {
	return &UnitOfWorkImpl{db: db}
}

func (u *UnitOfWorkImpl) Do(ctx context.Context, fn func(provider outbound.RepositoryProvider) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	provider := &RepositoryProviderImpl{
		queries: New(u.db).WithTx(tx),
	}

	if err := fn(provider); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx err: %w, rb err: %v", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}
