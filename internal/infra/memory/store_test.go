package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ outbound.UnitOfWork = (*Store)(nil)

func TestCustomerRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	address, _ := valueobject.NewAddress("Street 1", 1, "13330-250", "São Paulo")
	customer, err := entity.NewCustomer("1", "Customer 1", entity.WithAddress(address), entity.WithRewardPoints(3))
	require.NoError(t, err)
	require.NoError(t, customer.Activate())

	require.NoError(t, store.Customer().Create(ctx, customer))
	assert.ErrorIs(t, store.Customer().Create(ctx, customer), ErrAlreadyExists)

	found, err := store.Customer().Find(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Customer 1", found.Name())
	assert.Equal(t, address, found.Address())
	assert.True(t, found.IsActive())
	assert.Equal(t, 3, found.RewardPoints())

	require.NoError(t, found.ChangeName("Customer 2"))
	require.NoError(t, store.Customer().Update(ctx, found))
	all, err := store.Customer().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "Customer 2", all[0].Name())

	_, err = store.Customer().Find(ctx, "missing")
	assert.ErrorIs(t, err, outbound.ErrNotFound)
}

func TestProductRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	p1, _ := entity.NewProduct("p1", "Product 1", "", 10)
	p2, _ := entity.NewProduct("p2", "Product 2", "", 20)

	require.NoError(t, store.Product().Create(ctx, p2))
	require.NoError(t, store.Product().Create(ctx, p1))
	require.NoError(t, p1.ChangePrice(15))
	require.NoError(t, store.Product().Update(ctx, p1))

	all, err := store.Product().FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "p1", all[0].ID())
	assert.Equal(t, 15.0, all[0].Price())

	missing, _ := entity.NewProduct("p3", "Product 3", "", 1)
	assert.ErrorIs(t, store.Product().Update(ctx, missing), outbound.ErrNotFound)
}

func TestOrderRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	item, _ := entity.NewOrderItem("i1", "Item 1", 10, "p1", 2)
	order, _ := entity.NewOrder("o1", "c1", []*entity.OrderItem{item})

	require.NoError(t, store.Order().Create(ctx, order))
	extra, _ := entity.NewOrderItem("i2", "Item 2", 5, "p2", 1)
	require.NoError(t, order.AddItem(extra))
	require.NoError(t, store.Order().Update(ctx, order))

	found, err := store.Order().Find(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, 25.0, found.Total())
	assert.Len(t, found.Items(), 2)
}

func TestStore_Do_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	errBoom := errors.New("boom")
	product, _ := entity.NewProduct("p1", "Product 1", "", 10)

	err := store.Do(ctx, func(provider outbound.RepositoryProvider) error {
		require.NoError(t, provider.Product().Create(ctx, product))
		return errBoom
	})

	assert.ErrorIs(t, err, errBoom)
	_, err = store.Product().Find(ctx, "p1")
	assert.ErrorIs(t, err, outbound.ErrNotFound)
}

func TestStore_Do_Commits(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	product, _ := entity.NewProduct("p1", "Product 1", "", 10)

	err := store.Do(ctx, func(provider outbound.RepositoryProvider) error {
		return provider.Product().Create(ctx, product)
	})

	require.NoError(t, err)
	_, err = store.Product().Find(ctx, "p1")
	assert.NoError(t, err)
}

func TestStore_Do_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false

	err := NewStore().Do(ctx, func(outbound.RepositoryProvider) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
