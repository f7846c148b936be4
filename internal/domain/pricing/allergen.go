package pricing

import (
	"github.com/shopspring/decimal"

	"mealweek/internal/domain/entities"
)

// AllergenChargePerMeal is charged per matching allergen tag, per unit of
// quantity, on the authenticated path.
var AllergenChargePerMeal = decimal.NewFromFloat(5.00)

// AllergenBreakdown is the surcharge result: one entry per cart line that
// matched at least one declared allergy, plus the scalar total.
type AllergenBreakdown struct {
	Charges []entities.AllergenCharge
	Total   decimal.Decimal
}

// SurchargeForCart computes the per-meal allergen surcharge for an
// authenticated submission. For each line, the item's allergen tags are
// intersected with the customer's declared allergies (case-sensitive exact
// match); each match costs AllergenChargePerMeal per unit of quantity.
//
// The calculator is total: empty allergies, empty allergen lists or an empty
// cart all yield a zero-total breakdown. It is category-agnostic; snack
// lines accrue surcharges like any other line.
func SurchargeForCart(cart []entities.CartItem, allergies []string) AllergenBreakdown {
	out := AllergenBreakdown{Total: decimal.Zero}
	if len(allergies) == 0 {
		return out
	}

	declared := make(map[string]struct{}, len(allergies))
	for _, a := range allergies {
		declared[a] = struct{}{}
	}

	for _, line := range cart {
		var matched []string
		for _, tag := range line.Meal.Allergens {
			if _, ok := declared[tag]; ok {
				matched = append(matched, tag)
			}
		}
		if len(matched) == 0 {
			continue
		}

		charge := AllergenChargePerMeal.
			Mul(decimal.NewFromInt(int64(len(matched)))).
			Mul(decimal.NewFromInt(int64(line.Quantity)))

		out.Charges = append(out.Charges, entities.AllergenCharge{
			MenuItemID:       line.Meal.ID,
			MealName:         line.Meal.Name,
			MatchedAllergens: matched,
			Charge:           round2(charge),
		})
		out.Total = out.Total.Add(charge)
	}
	return out
}

// FlatGuestSurcharge is the guest-checkout variant: a single flat
// AllergenChargePerMeal per order whenever the declared allergy set is
// non-empty, regardless of whether any selected meal actually conflicts.
//
// The asymmetry with SurchargeForCart is a deliberate product rule for the
// guest channel, not an oversight; callers pick the variant by channel.
func FlatGuestSurcharge(allergies []string) AllergenBreakdown {
	if len(allergies) == 0 {
		return AllergenBreakdown{Total: decimal.Zero}
	}
	return AllergenBreakdown{
		Charges: []entities.AllergenCharge{{
			MealName:         "Order allergen accommodation",
			MatchedAllergens: append([]string(nil), allergies...),
			Charge:           round2(AllergenChargePerMeal),
		}},
		Total: AllergenChargePerMeal,
	}
}
