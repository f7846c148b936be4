package entities

import "time"

// OrderStatus represents the order lifecycle. This engine only creates
// pending orders and amends orders still in pending/confirmed; fulfillment
// collaborators advance the status beyond that, after which the order is
// immutable here.

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Amendable reports whether this engine may still rewrite the order's items
// and totals.
func (s OrderStatus) Amendable() bool {
	return s == OrderStatusPending || s == OrderStatusConfirmed
}

// Order is the priced weekly order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: customer_week = "<customer_id>#<week_of YYYY-MM-DD>"
//   - GSI1 (id-index): id
//
// Using the (customer, week) composite as PK guarantees at most one
// non-cancelled order per customer per billing week: creation is a
// conditional put, and a conditional-check failure is the concurrency signal
// to fall back to the amend path.
//
// OrderNumber, WeekOf and IsCreditUsed are immutable once assigned;
// amendments only rewrite items, charges, totals and week half.

type Order struct {
	ID                    string           `json:"id"`
	OrderNumber           string           `json:"orderNumber"`
	CustomerID            string           `json:"customer_id"`
	Status                OrderStatus      `json:"status"`
	WeekOf                time.Time        `json:"weekOf"`
	IsCreditUsed          bool             `json:"isCreditUsed"`
	OrderItems            []OrderItem      `json:"orderItems"`
	AllergenCharges       []AllergenCharge `json:"allergenCharges"`
	TotalAllergenCharges  float64          `json:"totalAllergenCharges"`
	Subtotal              float64          `json:"subtotal"`
	SubtotalWithAllergens float64          `json:"subtotalWithAllergens"`
	TaxAmount             float64          `json:"taxAmount"`
	TotalAmount           float64          `json:"totalAmount"`
	WeekHalf              WeekHalf         `json:"weekHalf"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
}

// OrderItem is one priced line of an order. Monetary fields are rounded to
// two decimal places.
type OrderItem struct {
	MenuItemID string   `json:"menu_item_id"`
	Name       string   `json:"name"`
	Category   string   `json:"category"`
	Quantity   int      `json:"quantity"`
	WeekHalf   WeekHalf `json:"weekHalf"`
	UnitPrice  float64  `json:"unitPrice"`
	TotalPrice float64  `json:"totalPrice"`
}

// AllergenCharge is the per-meal surcharge breakdown entry.
type AllergenCharge struct {
	MenuItemID       string   `json:"menu_item_id"`
	MealName         string   `json:"mealName"`
	MatchedAllergens []string `json:"matchedAllergens"`
	Charge           float64  `json:"charge"`
}
