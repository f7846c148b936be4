package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"mealweek/internal/domain/entities"
)

var taxRate = decimal.NewFromFloat(0.0825)

// Totals is the fully composed pricing result for one submission. All
// monetary fields are rounded to two decimal places, half-up on cents.
type Totals struct {
	Items                 []entities.OrderItem
	AllergenCharges       []entities.AllergenCharge
	TotalAllergenCharges  float64
	MealSubtotal          float64
	SnackSubtotal         float64
	Subtotal              float64
	SubtotalWithAllergens float64
	TaxAmount             float64
	TotalAmount           float64
	WeekHalf              entities.WeekHalf
}

// ComposeTotals combines the decided meal subtotal, the à-la-carte snack
// lines and the allergen surcharge into the final item list and totals.
//
// Bundled meal lines share the plan subtotal evenly by line count (not by
// quantity): each meal line's unit price is mealSubtotal / mealLineCount and
// doubles as its line total, rounded to cents per line. The displayed lines
// may therefore drift from the plan subtotal by a cent; order totals are
// computed from the undivided subtotal, so the drift never reaches what the
// customer is charged. When the plan subtotal is zero, meal lines price at
// zero. Snack lines always use the menu item's own price, charged in full.
func ComposeTotals(cart []entities.CartItem, mealSubtotal decimal.Decimal, allergens AllergenBreakdown) Totals {
	mealLines := 0
	for _, line := range cart {
		if Classify(line.Meal) == LineMeal {
			mealLines++
		}
	}

	// Guard the even split against a zero-meal denominator.
	divisor := mealLines
	if divisor < 1 {
		divisor = 1
	}
	mealUnit := decimal.Zero
	if mealSubtotal.IsPositive() {
		mealUnit = mealSubtotal.DivRound(decimal.NewFromInt(int64(divisor)), 4)
	}

	items := make([]entities.OrderItem, 0, len(cart))
	snackSubtotal := decimal.Zero
	for _, line := range cart {
		item := entities.OrderItem{
			MenuItemID: line.Meal.ID,
			Name:       line.Meal.Name,
			Category:   line.Meal.Category,
			Quantity:   line.Quantity,
			WeekHalf:   line.WeekHalf,
		}
		switch Classify(line.Meal) {
		case LineSnack:
			unit := decimal.NewFromFloat(line.Meal.Price)
			lineTotal := unit.Mul(decimal.NewFromInt(int64(line.Quantity)))
			item.UnitPrice = round2(unit)
			item.TotalPrice = round2(lineTotal)
			snackSubtotal = snackSubtotal.Add(lineTotal)
		default:
			item.UnitPrice = round2(mealUnit)
			item.TotalPrice = round2(mealUnit)
		}
		items = append(items, item)
	}

	subtotal := mealSubtotal.Add(snackSubtotal)
	subtotalWithAllergens := subtotal.Add(allergens.Total)
	tax := subtotalWithAllergens.Mul(taxRate)
	total := subtotalWithAllergens.Add(tax)

	return Totals{
		Items:                 items,
		AllergenCharges:       allergens.Charges,
		TotalAllergenCharges:  round2(allergens.Total),
		MealSubtotal:          round2(mealSubtotal),
		SnackSubtotal:         round2(snackSubtotal),
		Subtotal:              round2(subtotal),
		SubtotalWithAllergens: round2(subtotalWithAllergens),
		TaxAmount:             round2(tax),
		TotalAmount:           round2(total),
		WeekHalf:              OrderWeekHalf(cart),
	}
}

// OrderWeekHalf derives the order-level delivery window from the union of
// line week halves.
func OrderWeekHalf(cart []entities.CartItem) entities.WeekHalf {
	first, second := false, false
	for _, line := range cart {
		switch line.WeekHalf {
		case entities.WeekHalfSecond:
			second = true
		default:
			first = true
		}
	}
	switch {
	case first && second:
		return entities.WeekHalfBoth
	case second:
		return entities.WeekHalfSecond
	default:
		return entities.WeekHalfFirst
	}
}

// WeekOf resolves the billing-week anchor: the most recent Sunday at or
// before the given instant, normalized to midnight UTC.
func WeekOf(now time.Time) time.Time {
	now = now.UTC()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.AddDate(0, 0, -int(midnight.Weekday()))
}

// round2 rounds to cents, half away from zero (half-up for money amounts).
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
