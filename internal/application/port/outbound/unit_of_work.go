package outbound

import (
	"context"
)

// RepositoryProvider hands out repositories bound to the current transaction.
type RepositoryProvider interface {
	Customer() CustomerRepository
	Product() ProductRepository
	Order() OrderRepository
}

// UnitOfWork runs fn in a transaction. An error from fn, including one
// returned by an event handler, rolls the transaction back.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(provider RepositoryProvider) error) error
}
