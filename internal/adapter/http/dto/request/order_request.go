package request

import (
	"errors"
	"strings"

	"mealweek/internal/domain/entities"
)

var (
	ErrMissingSelectedMeals = errors.New("selectedMeals is required")
	ErrMissingMealID        = errors.New("selected meal is missing an id")
)

type MenuItemRequest struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Price     float64  `json:"price"`
	Allergens []string `json:"allergens"`
}

type SelectedMealRequest struct {
	Meal     MenuItemRequest `json:"meal"`
	Quantity int             `json:"quantity"`
	WeekHalf string          `json:"weekHalf"`
}

// OrderSubmissionRequest is the authenticated submission payload. The
// caller's identity comes from the bearer token, not the body.
type OrderSubmissionRequest struct {
	SelectedMeals []SelectedMealRequest `json:"selectedMeals"`
}

// ToCartItems validates and normalizes the selection into domain cart
// items: quantity defaults to 1, weekHalf defaults to firstHalf.
func (r OrderSubmissionRequest) ToCartItems() ([]entities.CartItem, error) {
	return toCartItems(r.SelectedMeals)
}

func toCartItems(meals []SelectedMealRequest) ([]entities.CartItem, error) {
	if len(meals) == 0 {
		return nil, ErrMissingSelectedMeals
	}

	cart := make([]entities.CartItem, 0, len(meals))
	for _, m := range meals {
		if strings.TrimSpace(m.Meal.ID) == "" {
			return nil, ErrMissingMealID
		}
		qty := m.Quantity
		if qty < 1 {
			qty = 1
		}
		cart = append(cart, entities.CartItem{
			Meal: entities.MenuItem{
				ID:        strings.TrimSpace(m.Meal.ID),
				Name:      m.Meal.Name,
				Category:  m.Meal.Category,
				Price:     m.Meal.Price,
				Allergens: m.Meal.Allergens,
			},
			Quantity: qty,
			WeekHalf: parseWeekHalf(m.WeekHalf),
		})
	}
	return cart, nil
}

func parseWeekHalf(raw string) entities.WeekHalf {
	if entities.WeekHalf(raw) == entities.WeekHalfSecond {
		return entities.WeekHalfSecond
	}
	return entities.WeekHalfFirst
}
