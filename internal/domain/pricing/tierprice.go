package pricing

import (
	"github.com/shopspring/decimal"

	"mealweek/internal/domain/entities"
)

var (
	breakfastPriceLower = decimal.NewFromFloat(6.50)
	breakfastPriceUpper = decimal.NewFromFloat(8.00)
)

// lowerBreakfastTiers is the fixed tier-name set that gets the lower
// breakfast price.
var lowerBreakfastTiers = map[string]struct{}{
	"Tier 1":  {},
	"Tier 1+": {},
	"Tier 2":  {},
}

// BreakfastPrice returns the per-day breakfast add-on price for a tier.
func BreakfastPrice(tier *entities.Tier) decimal.Decimal {
	if tier == nil {
		return breakfastPriceUpper
	}
	if _, ok := lowerBreakfastTiers[tier.Name]; ok {
		return breakfastPriceLower
	}
	return breakfastPriceUpper
}

// BaseWeekly is the tier-resolved weekly cost before any frequency discount.
type BaseWeekly struct {
	MealCost      decimal.Decimal
	BreakfastCost decimal.Decimal
	Total         decimal.Decimal
}

// ResolveBaseWeekly computes the undiscounted weekly plan cost from the
// customer's tier and validated plan shape. A missing tier resolves to zero,
// keeping the function total over its input domain.
func ResolveBaseWeekly(tier *entities.Tier, plan entities.PlanConfig) BaseWeekly {
	if tier == nil {
		return BaseWeekly{MealCost: decimal.Zero, BreakfastCost: decimal.Zero, Total: decimal.Zero}
	}

	days := decimal.NewFromInt(int64(plan.DaysPerWeek))
	meals := decimal.NewFromInt(int64(plan.MealsPerDay))

	mealCost := days.Mul(meals).Mul(decimal.NewFromFloat(tier.SinglePrice))
	breakfastCost := decimal.Zero
	if plan.IncludeBreakfast {
		breakfastCost = days.Mul(BreakfastPrice(tier))
	}

	return BaseWeekly{
		MealCost:      mealCost,
		BreakfastCost: breakfastCost,
		Total:         mealCost.Add(breakfastCost),
	}
}
