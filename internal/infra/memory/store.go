package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/DioGolang/GoEvents/internal/application/port/outbound"
	"github.com/DioGolang/GoEvents/internal/domain/entity"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
)

var ErrAlreadyExists = errors.New("already exists")

type customerRecord struct {
	id           string
	name         string
	address      valueobject.Address
	active       bool
	rewardPoints int
}

type productRecord struct {
	id          string
	name        string
	description string
	price       float64
}

type orderItemRecord struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

type orderRecord struct {
	id         string
	customerID string
	items      []orderItemRecord
}

// Store keeps entities as plain records so that callers never share entity
// pointers with the store.
type Store struct {
	mu        sync.RWMutex
	txMu      sync.Mutex
	customers map[string]customerRecord
	products  map[string]productRecord
	orders    map[string]orderRecord
}

func NewStore() *Store {
	return &Store{
		customers: make(map[string]customerRecord),
		products:  make(map[string]productRecord),
		orders:    make(map[string]orderRecord),
	}
}

func (s *Store) Customer() outbound.CustomerRepository { return &CustomerRepository{store: s} }
func (s *Store) Product() outbound.ProductRepository   { return &ProductRepository{store: s} }
func (s *Store) Order() outbound.OrderRepository       { return &OrderRepository{store: s} }

type snapshot struct {
	customers map[string]customerRecord
	products  map[string]productRecord
	orders    map[string]orderRecord
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		customers: make(map[string]customerRecord, len(s.customers)),
		products:  make(map[string]productRecord, len(s.products)),
		orders:    make(map[string]orderRecord, len(s.orders)),
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.products {
		snap.products[k] = v
	}
	for k, v := range s.orders {
		snap.orders[k] = v
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = snap.customers
	s.products = snap.products
	s.orders = snap.orders
}

// Do serializes units of work and restores the previous state when fn fails.
func (s *Store) Do(ctx context.Context, fn func(provider outbound.RepositoryProvider) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snap := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type CustomerRepository struct {
	store *Store
}

func (r *CustomerRepository) Create(_ context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[c.ID()]; ok {
		return ErrAlreadyExists
	}
	r.store.customers[c.ID()] = toCustomerRecord(c)
	return nil
}

func (r *CustomerRepository) Update(_ context.Context, c *entity.Customer) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.customers[c.ID()]; !ok {
		return outbound.ErrNotFound
	}
	r.store.customers[c.ID()] = toCustomerRecord(c)
	return nil
}

func (r *CustomerRepository) Find(_ context.Context, id string, opts ...entity.CustomerOption) (*entity.Customer, error) {
	r.store.mu.RLock()
	rec, ok := r.store.customers[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, outbound.ErrNotFound
	}
	return rec.toEntity(opts...)
}

func (r *CustomerRepository) FindAll(_ context.Context) ([]*entity.Customer, error) {
	r.store.mu.RLock()
	records := make([]customerRecord, 0, len(r.store.customers))
	for _, rec := range r.store.customers {
		records = append(records, rec)
	}
	r.store.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].id < records[j].id })

	out := make([]*entity.Customer, 0, len(records))
	for _, rec := range records {
		c, err := rec.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func toCustomerRecord(c *entity.Customer) customerRecord {
	return customerRecord{
		id:           c.ID(),
		name:         c.Name(),
		address:      c.Address(),
		active:       c.IsActive(),
		rewardPoints: c.RewardPoints(),
	}
}

func (rec customerRecord) toEntity(opts ...entity.CustomerOption) (*entity.Customer, error) {
	state := []entity.CustomerOption{
		entity.WithAddress(rec.address),
		entity.WithActive(rec.active),
		entity.WithRewardPoints(rec.rewardPoints),
	}
	return entity.NewCustomer(rec.id, rec.name, append(state, opts...)...)
}

type ProductRepository struct {
	store *Store
}

func (r *ProductRepository) Create(_ context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[p.ID()]; ok {
		return ErrAlreadyExists
	}
	r.store.products[p.ID()] = toProductRecord(p)
	return nil
}

func (r *ProductRepository) Update(_ context.Context, p *entity.Product) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[p.ID()]; !ok {
		return outbound.ErrNotFound
	}
	r.store.products[p.ID()] = toProductRecord(p)
	return nil
}

func (r *ProductRepository) Find(_ context.Context, id string) (*entity.Product, error) {
	r.store.mu.RLock()
	rec, ok := r.store.products[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, outbound.ErrNotFound
	}
	return entity.NewProduct(rec.id, rec.name, rec.description, rec.price)
}

func (r *ProductRepository) FindAll(_ context.Context) ([]*entity.Product, error) {
	r.store.mu.RLock()
	records := make([]productRecord, 0, len(r.store.products))
	for _, rec := range r.store.products {
		records = append(records, rec)
	}
	r.store.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].id < records[j].id })

	out := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		p, err := entity.NewProduct(rec.id, rec.name, rec.description, rec.price)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func toProductRecord(p *entity.Product) productRecord {
	return productRecord{id: p.ID(), name: p.Name(), description: p.Description(), price: p.Price()}
}

type OrderRepository struct {
	store *Store
}

func (r *OrderRepository) Create(_ context.Context, o *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[o.ID()]; ok {
		return ErrAlreadyExists
	}
	r.store.orders[o.ID()] = toOrderRecord(o)
	return nil
}

func (r *OrderRepository) Update(_ context.Context, o *entity.Order) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.orders[o.ID()]; !ok {
		return outbound.ErrNotFound
	}
	r.store.orders[o.ID()] = toOrderRecord(o)
	return nil
}

func (r *OrderRepository) Find(_ context.Context, id string) (*entity.Order, error) {
	r.store.mu.RLock()
	rec, ok := r.store.orders[id]
	r.store.mu.RUnlock()

	if !ok {
		return nil, outbound.ErrNotFound
	}
	return rec.toEntity()
}

func (r *OrderRepository) FindAll(_ context.Context) ([]*entity.Order, error) {
	r.store.mu.RLock()
	records := make([]orderRecord, 0, len(r.store.orders))
	for _, rec := range r.store.orders {
		records = append(records, rec)
	}
	r.store.mu.RUnlock()

	sort.Slice(records, func(i, j int) bool { return records[i].id < records[j].id })

	out := make([]*entity.Order, 0, len(records))
	for _, rec := range records {
		o, err := rec.toEntity()
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func toOrderRecord(o *entity.Order) orderRecord {
	rec := orderRecord{id: o.ID(), customerID: o.CustomerID()}
	for _, item := range o.Items() {
		rec.items = append(rec.items, orderItemRecord{
			id:        item.ID(),
			name:      item.Name(),
			price:     item.Price(),
			productID: item.ProductID(),
			quantity:  item.Quantity(),
		})
	}
	return rec
}

func (rec orderRecord) toEntity() (*entity.Order, error) {
	items := make([]*entity.OrderItem, 0, len(rec.items))
	for _, it := range rec.items {
		item, err := entity.NewOrderItem(it.id, it.name, it.price, it.productID, it.quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return entity.NewOrder(rec.id, rec.customerID, items)
}
