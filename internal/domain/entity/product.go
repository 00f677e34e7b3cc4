package entity

import "errors"

var ErrPriceMustBePos = errors.New("price must be greater than zero")

type Product struct {
	id          string
	name        string
	description string
	price       float64
}

func NewProduct(id string, name string, description string, price float64) (*Product, error) {
	p := &Product{
		id:          id,
		name:        name,
		description: description,
		price:       price,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Product) Validate() error {
	if p.id == "" {
		return ErrIDIsRequired
	}
	if p.name == "" {
		return ErrNameIsRequired
	}
	if p.price <= 0 {
		return ErrPriceMustBePos
	}
	return nil
}

func (p *Product) ChangeName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}

func (p *Product) ChangePrice(price float64) error {
	if price <= 0 {
		return ErrPriceMustBePos
	}
	p.price = price
	return nil
}

func (p *Product) ID() string          { return p.id }
func (p *Product) Name() string        { return p.name }
func (p *Product) Description() string { return p.description }
func (p *Product) Price() float64      { return p.price }
