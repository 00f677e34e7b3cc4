package entity

import "errors"

var (
	ErrCustomerIDIsRequired = errors.New("customer id is required")
	ErrItemsAreRequired     = errors.New("items are required")
	ErrQuantityMustBePos    = errors.New("quantity must be greater than zero")
	ErrProductIDIsRequired  = errors.New("product id is required")
)

type OrderItem struct {
	id        string
	name      string
	price     float64
	productID string
	quantity  int
}

func NewOrderItem(id string, name string, price float64, productID string, quantity int) (*OrderItem, error) {
	item := &OrderItem{
		id:        id,
		name:      name,
		price:     price,
		productID: productID,
		quantity:  quantity,
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrItemsAreRequired
	}
	if i.id == "" {
		return ErrIDIsRequired
	}
	if i.productID == "" {
		return ErrProductIDIsRequired
	}
	if i.price <= 0 {
		return ErrPriceMustBePos
	}
	if i.quantity <= 0 {
		return ErrQuantityMustBePos
	}
	return nil
}

func (i *OrderItem) ID() string        { return i.id }
func (i *OrderItem) Name() string      { return i.name }
func (i *OrderItem) Price() float64    { return i.price }
func (i *OrderItem) ProductID() string { return i.productID }
func (i *OrderItem) Quantity() int     { return i.quantity }
func (i *OrderItem) Total() float64    { return i.price * float64(i.quantity) }

type Order struct {
	id         string
	customerID string
	items      []*OrderItem
}

func NewOrder(id string, customerID string, items []*OrderItem) (*Order, error) {
	order := &Order{
		id:         id,
		customerID: customerID,
		items:      items,
	}

	err := order.Validate()
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (o *Order) Validate() error {
	if o.id == "" {
		return ErrIDIsRequired
	}
	if o.customerID == "" {
		return ErrCustomerIDIsRequired
	}
	if len(o.items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range o.items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *Order) AddItem(item *OrderItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	o.items = append(o.items, item)
	return nil
}

func (o *Order) Total() float64 {
	var total float64
	for _, item := range o.items {
		total += item.Total()
	}
	return total
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) CustomerID() string {
	return o.customerID
}

func (o *Order) Items() []*OrderItem {
	return append([]*OrderItem(nil), o.items...)
}
