package order

// Input

type PlaceItemInput struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type PlaceInput struct {
	CustomerID string           `json:"customer_id"`
	Items      []PlaceItemInput `json:"items"`
}

// Output

type PlaceOutput struct {
	ID           string  `json:"id"`
	CustomerID   string  `json:"customer_id"`
	Total        float64 `json:"total"`
	RewardPoints int     `json:"reward_points"`
}
