package entities

// CategorySnack is the only pricing-significant menu category: snacks are
// always priced individually, never bundled into tier pricing.
const CategorySnack = "snack"

// MenuItem is a catalog entry referenced by cart submissions. The catalog
// itself is owned by an external collaborator; submissions carry the resolved
// fields this engine needs.
type MenuItem struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Price     float64  `json:"price"`
	Allergens []string `json:"allergens"`
}

// WeekHalf is the sub-week delivery window used to split pickup/fulfillment.
// It is orthogonal to pricing.

type WeekHalf string

const (
	WeekHalfFirst  WeekHalf = "firstHalf"
	WeekHalfSecond WeekHalf = "secondHalf"
	WeekHalfBoth   WeekHalf = "both"
)

// CartItem is one line of a submission. Quantity is always >= 1 by the time
// it reaches pricing; the request DTO normalizes it.
type CartItem struct {
	Meal     MenuItem `json:"meal"`
	Quantity int      `json:"quantity"`
	WeekHalf WeekHalf `json:"weekHalf"`
}
