package valueobject

import (
	"errors"
	"fmt"
)

var (
	ErrStreetIsRequired = errors.New("street is required")
	ErrNumberMustBePos  = errors.New("number must be greater than zero")
	ErrZipIsRequired    = errors.New("zip is required")
	ErrCityIsRequired   = errors.New("city is required")
)

// Address is immutable; build a new one to change any field.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip string, city string) (Address, error) {
	a := Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
	if err := a.Validate(); err != nil {
		return Address{}, err
	}
	return a, nil
}

func (a Address) Validate() error {
	if a.street == "" {
		return ErrStreetIsRequired
	}
	if a.number <= 0 {
		return ErrNumberMustBePos
	}
	if a.zip == "" {
		return ErrZipIsRequired
	}
	if a.city == "" {
		return ErrCityIsRequired
	}
	return nil
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

func (a Address) IsZero() bool {
	return a == Address{}
}

func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s %s", a.street, a.number, a.zip, a.city)
}
