package response

import (
	"mealweek/internal/domain/entities"
)

type MenuItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

type OrderItemResponse struct {
	MenuItem   MenuItemResponse `json:"menuItem"`
	Quantity   int              `json:"quantity"`
	WeekHalf   string           `json:"weekHalf"`
	UnitPrice  float64          `json:"unitPrice"`
	TotalPrice float64          `json:"totalPrice"`
}

type AllergenChargeResponse struct {
	MenuItemID       string   `json:"menuItemId,omitempty"`
	MealName         string   `json:"mealName"`
	MatchedAllergens []string `json:"matchedAllergens"`
	Charge           float64  `json:"charge"`
}

type OrderResponse struct {
	ID                    string                   `json:"id"`
	OrderNumber           string                   `json:"orderNumber"`
	Status                string                   `json:"status"`
	WeekOf                string                   `json:"weekOf"`
	WeekHalf              string                   `json:"weekHalf"`
	OrderItems            []OrderItemResponse      `json:"orderItems"`
	AllergenCharges       []AllergenChargeResponse `json:"allergenCharges"`
	TotalAllergenCharges  float64                  `json:"totalAllergenCharges"`
	Subtotal              float64                  `json:"subtotal"`
	SubtotalWithAllergens float64                  `json:"subtotalWithAllergens"`
	TaxAmount             float64                  `json:"taxAmount"`
	TotalAmount           float64                  `json:"totalAmount"`
	IsCreditUsed          bool                     `json:"isCreditUsed"`
}

// OrderSubmissionResponse is the success envelope for both submission paths.
type OrderSubmissionResponse struct {
	Message    string        `json:"message"`
	CustomerID string        `json:"customerId,omitempty"`
	Order      OrderResponse `json:"order"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.OrderItems))
	for _, it := range o.OrderItems {
		items = append(items, OrderItemResponse{
			MenuItem: MenuItemResponse{
				ID:       it.MenuItemID,
				Name:     it.Name,
				Category: it.Category,
			},
			Quantity:   it.Quantity,
			WeekHalf:   string(it.WeekHalf),
			UnitPrice:  it.UnitPrice,
			TotalPrice: it.TotalPrice,
		})
	}

	charges := make([]AllergenChargeResponse, 0, len(o.AllergenCharges))
	for _, c := range o.AllergenCharges {
		charges = append(charges, AllergenChargeResponse{
			MenuItemID:       c.MenuItemID,
			MealName:         c.MealName,
			MatchedAllergens: c.MatchedAllergens,
			Charge:           c.Charge,
		})
	}

	return OrderResponse{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		Status:                string(o.Status),
		WeekOf:                o.WeekOf.UTC().Format("2006-01-02"),
		WeekHalf:              string(o.WeekHalf),
		OrderItems:            items,
		AllergenCharges:       charges,
		TotalAllergenCharges:  o.TotalAllergenCharges,
		Subtotal:              o.Subtotal,
		SubtotalWithAllergens: o.SubtotalWithAllergens,
		TaxAmount:             o.TaxAmount,
		TotalAmount:           o.TotalAmount,
		IsCreditUsed:          o.IsCreditUsed,
	}
}
