package event

type CustomerCreatedPayload struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CustomerCreated struct {
	base
	payload CustomerCreatedPayload
}

func NewCustomerCreated(payload CustomerCreatedPayload) *CustomerCreated {
	return &CustomerCreated{
		base:    newBase(CustomerCreatedEventName),
		payload: payload,
	}
}

func (e *CustomerCreated) GetPayload() interface{} {
	return e.payload
}

func (e *CustomerCreated) Payload() CustomerCreatedPayload {
	return e.payload
}
