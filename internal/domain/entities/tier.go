package entities

// Tier is a pricing/catalog grouping of meal plans with a per-meal unit price.
type Tier struct {
	ID          string  `json:"id"`
	Name        string  `json:"tier_name"`
	SinglePrice float64 `json:"single_price"`
}
