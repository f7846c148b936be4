package pricing

import (
	"github.com/shopspring/decimal"

	"mealweek/internal/domain/entities"
)

var (
	weeklyDiscountFactor  = decimal.NewFromFloat(0.90)
	monthlyDiscountFactor = decimal.NewFromFloat(0.85)
	weeksPerMonth         = decimal.NewFromInt(4)
)

// CreditsGrantedPerMonth is the credit block granted on a full monthly
// purchase: three prepaid future weeks.
const CreditsGrantedPerMonth = 3

// BillingContext is the state the discount/credit decision runs over.
type BillingContext struct {
	// IsUpdate marks an amendment of an existing order for the same week.
	IsUpdate bool
	// ExistingCreditUsed is the amended order's original flag; only
	// meaningful when IsUpdate is true.
	ExistingCreditUsed bool
	Frequency          entities.SubscriptionFrequency
	PlanCredits        int
}

// Decision is the outcome of the discount/credit state machine. Credit side
// effects are applied by the coordinator only after the order write succeeds.
type Decision struct {
	MealSubtotal  decimal.Decimal
	IsCreditUsed  bool
	ConsumeCredit bool
	GrantCredits  int
}

// Decide applies the frequency discount and credit rules to the undiscounted
// weekly base cost, in priority order:
//
//  1. Amendments preserve the order's original credit flag. A credit-paid
//     order re-prices meals at zero; a weekly order re-prices at the weekly
//     discount; a monthly order is never re-billed by an amendment.
//  2. New monthly order with credits available: consume one, meals are zero.
//  3. New monthly order without credits: one month at 15% off, and three
//     credits are granted once the order persists.
//  4. New weekly order: 10% off, no credit interaction.
//
// Frequencies outside weekly/monthly carry no bundled plan, so meal lines
// price at zero; snacks are priced separately and are never discounted.
func Decide(baseWeekly decimal.Decimal, bc BillingContext) Decision {
	if bc.IsUpdate {
		if bc.ExistingCreditUsed {
			return Decision{MealSubtotal: decimal.Zero, IsCreditUsed: true}
		}
		if bc.Frequency == entities.FrequencyWeekly {
			return Decision{MealSubtotal: baseWeekly.Mul(weeklyDiscountFactor)}
		}
		// Monthly commitments are treated as already billed.
		return Decision{MealSubtotal: decimal.Zero}
	}

	switch bc.Frequency {
	case entities.FrequencyMonthly:
		if bc.PlanCredits > 0 {
			return Decision{MealSubtotal: decimal.Zero, IsCreditUsed: true, ConsumeCredit: true}
		}
		return Decision{
			MealSubtotal: baseWeekly.Mul(weeksPerMonth).Mul(monthlyDiscountFactor),
			GrantCredits: CreditsGrantedPerMonth,
		}
	case entities.FrequencyWeekly:
		return Decision{MealSubtotal: baseWeekly.Mul(weeklyDiscountFactor)}
	default:
		return Decision{MealSubtotal: decimal.Zero}
	}
}
