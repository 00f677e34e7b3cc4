package event

import "github.com/DioGolang/GoEvents/internal/domain/valueobject"

type CustomerAddressChangedPayload struct {
	CustomerID string
	Name       string
	Address    valueobject.Address
}

type CustomerAddressChanged struct {
	base
	payload CustomerAddressChangedPayload
}

func NewCustomerAddressChanged(payload CustomerAddressChangedPayload) *CustomerAddressChanged {
	return &CustomerAddressChanged{
		base:    newBase(CustomerAddressChangedEventName),
		payload: payload,
	}
}

func (e *CustomerAddressChanged) GetPayload() interface{} {
	return e.payload
}

func (e *CustomerAddressChanged) Payload() CustomerAddressChangedPayload {
	return e.payload
}
