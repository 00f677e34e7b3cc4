package customer

// Input

type AddressInput struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type CreateInput struct {
	Name    string        `json:"name"`
	Address *AddressInput `json:"address,omitempty"`
}

type ChangeAddressInput struct {
	ID      string       `json:"-"`
	Address AddressInput `json:"address"`
}

// Output

type AddressOutput struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

type CreateOutput struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Address *AddressOutput `json:"address,omitempty"`
}

type ChangeAddressOutput struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Address AddressOutput `json:"address"`
}
