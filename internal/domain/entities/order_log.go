package entities

import "time"

// OrderLog is the append-only audit record written whenever an existing
// order is amended. It captures the item sets and totals before and after
// the amendment and is never mutated or deleted by this engine.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id

type OrderLog struct {
	ID            string      `json:"id"`
	OrderID       string      `json:"order_id"`
	PreviousItems []OrderItem `json:"previousItems"`
	NewItems      []OrderItem `json:"newItems"`
	PreviousTotal float64     `json:"previousTotal"`
	NewTotal      float64     `json:"newTotal"`
	CreatedAt     time.Time   `json:"created_at"`
}
