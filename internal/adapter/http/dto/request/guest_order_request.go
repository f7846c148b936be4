package request

import (
	"errors"
	"strings"

	"mealweek/internal/domain/entities"
)

var (
	ErrMissingCustomerInfo = errors.New("customerInfo with an email is required")
	ErrMissingTier         = errors.New("tier is required")
)

type GuestCustomerInfoRequest struct {
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	Allergies []string `json:"allergies"`
}

// GuestTierRequest carries whichever price shape the storefront has on hand:
// the per-meal unit price or the precomputed weekly price for the fixed
// 20-meal guest plan.
type GuestTierRequest struct {
	ID          string  `json:"id"`
	Name        string  `json:"tier_name"`
	SinglePrice float64 `json:"single_price"`
	WeeklyPrice float64 `json:"weekly_price"`
}

// GuestOrderRequest is the unauthenticated submission payload.
type GuestOrderRequest struct {
	CustomerInfo  GuestCustomerInfoRequest `json:"customerInfo"`
	Tier          GuestTierRequest         `json:"tier"`
	SelectedMeals []SelectedMealRequest    `json:"selectedMeals"`
}

const guestMealsPerWeek = 20

func (r GuestOrderRequest) Validate() error {
	if strings.TrimSpace(r.CustomerInfo.Email) == "" {
		return ErrMissingCustomerInfo
	}
	if strings.TrimSpace(r.Tier.ID) == "" {
		return ErrMissingTier
	}
	if len(r.SelectedMeals) == 0 {
		return ErrMissingSelectedMeals
	}
	return nil
}

// ResolveTier normalizes the tier payload to a per-meal unit price, deriving
// it from the weekly price when only that was supplied.
func (r GuestOrderRequest) ResolveTier() entities.Tier {
	single := r.Tier.SinglePrice
	if single <= 0 && r.Tier.WeeklyPrice > 0 {
		single = r.Tier.WeeklyPrice / guestMealsPerWeek
	}
	return entities.Tier{
		ID:          strings.TrimSpace(r.Tier.ID),
		Name:        r.Tier.Name,
		SinglePrice: single,
	}
}

func (r GuestOrderRequest) ToCartItems() ([]entities.CartItem, error) {
	return toCartItems(r.SelectedMeals)
}
