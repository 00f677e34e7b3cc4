package entity

import (
	"context"

	"github.com/DioGolang/GoEvents/internal/domain/event"
	"github.com/DioGolang/GoEvents/internal/domain/valueobject"
	"github.com/DioGolang/GoEvents/pkg/events"
)

type Customer struct {
	id           string
	name         string
	address      valueobject.Address
	active       bool
	rewardPoints int

	dispatcher            events.EventDispatcher
	addressChangedHandler events.EventHandler
}

type CustomerOption func(*Customer)

// WithEventDispatcher makes the customer notify through d instead of a
// dispatcher of its own.
func WithEventDispatcher(d events.EventDispatcher) CustomerOption {
	return func(c *Customer) { c.dispatcher = d }
}

// WithAddressChangedHandler registers h for CustomerAddressChangedEvent when
// the customer is built.
func WithAddressChangedHandler(h events.EventHandler) CustomerOption {
	return func(c *Customer) { c.addressChangedHandler = h }
}

// WithAddress restores a persisted address without raising an event.
func WithAddress(a valueobject.Address) CustomerOption {
	return func(c *Customer) { c.address = a }
}

func WithRewardPoints(points int) CustomerOption {
	return func(c *Customer) { c.rewardPoints = points }
}

func WithActive(active bool) CustomerOption {
	return func(c *Customer) { c.active = active }
}

func NewCustomer(id string, name string, opts ...CustomerOption) (*Customer, error) {
	c := &Customer{
		id:   id,
		name: name,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.dispatcher == nil {
		c.dispatcher = events.NewEventDispatcher()
	}
	if c.addressChangedHandler != nil {
		c.dispatcher.Register(event.CustomerAddressChangedEventName, c.addressChangedHandler)
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c.id == "" {
		return ErrIDIsRequired
	}
	if c.name == "" {
		return ErrNameIsRequired
	}
	if c.rewardPoints < 0 {
		return ErrRewardPointsNeg
	}
	if c.active && c.address.IsZero() {
		return ErrAddressIsRequired
	}
	return nil
}

func (c *Customer) ChangeName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

// ChangeAddress replaces the address and notifies CustomerAddressChangedEvent.
// A handler error is returned unchanged; the new address is kept.
func (c *Customer) ChangeAddress(ctx context.Context, address valueobject.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address

	return c.dispatcher.Dispatch(ctx, event.NewCustomerAddressChanged(event.CustomerAddressChangedPayload{
		CustomerID: c.id,
		Name:       c.name,
		Address:    address,
	}))
}

func (c *Customer) Activate() error {
	if c.address.IsZero() {
		return ErrAddressIsRequired
	}
	c.active = true
	return nil
}

func (c *Customer) Deactivate() {
	c.active = false
}

func (c *Customer) AddRewardPoints(points int) error {
	if points < 0 {
		return ErrRewardPointsNeg
	}
	c.rewardPoints += points
	return nil
}

func (c *Customer) ID() string                   { return c.id }
func (c *Customer) Name() string                 { return c.name }
func (c *Customer) Address() valueobject.Address { return c.address }
func (c *Customer) IsActive() bool               { return c.active }
func (c *Customer) RewardPoints() int            { return c.rewardPoints }

func (c *Customer) EventDispatcher() events.EventDispatcher { return c.dispatcher }

func (c *Customer) AddressChangedHandler() events.EventHandler { return c.addressChangedHandler }
