package event

type ProductCreatedPayload struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type ProductCreated struct {
	base
	payload ProductCreatedPayload
}

func NewProductCreated(payload ProductCreatedPayload) *ProductCreated {
	return &ProductCreated{
		base:    newBase(ProductCreatedEventName),
		payload: payload,
	}
}

func (e *ProductCreated) GetPayload() interface{} {
	return e.payload
}

func (e *ProductCreated) Payload() ProductCreatedPayload {
	return e.payload
}
