package event

import "time"

// Event names used as dispatcher registry keys.
const (
	CustomerCreatedEventName        = "CustomerCreatedEvent"
	CustomerAddressChangedEventName = "CustomerAddressChangedEvent"
	ProductCreatedEventName         = "ProductCreatedEvent"
)

type base struct {
	name     string
	dateTime time.Time
}

func newBase(name string) base {
	return base{name: name, dateTime: time.Now()}
}

func (b base) GetName() string {
	return b.name
}

func (b base) GetDateTime() time.Time {
	return b.dateTime
}
