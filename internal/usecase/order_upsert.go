package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"mealweek/internal/domain/entities"
	"mealweek/internal/domain/pricing"
	"mealweek/internal/usecase/interfaces"
)

var (
	ErrEmptyCart        = errors.New("selectedMeals is required")
	ErrInvalidCartItem  = errors.New("invalid cart item")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrOrderLocked      = errors.New("order can no longer be modified")
)

// SubmissionResult is the coordinator outcome: the persisted order and
// whether it was created or an existing week order was amended.
type SubmissionResult struct {
	Order   entities.Order
	Created bool
}

// orderUpserter is the shared coordinator behind both submission paths. For
// a given customer and billing week it either creates a new priced order or
// amends the existing non-cancelled one, then applies any credit side
// effects as a dependent second write.
type orderUpserter struct {
	customers interfaces.ICustomerRepository
	orders    interfaces.IOrderRepository
	logs      interfaces.IOrderLogRepository
	sequence  interfaces.IOrderSequence
}

func validateCart(cart []entities.CartItem) error {
	if len(cart) == 0 {
		return ErrEmptyCart
	}
	for _, line := range cart {
		if line.Meal.ID == "" {
			return fmt.Errorf("%w: missing meal id", ErrInvalidCartItem)
		}
		if line.Quantity < 1 {
			return fmt.Errorf("%w: quantity must be at least 1", ErrInvalidCartItem)
		}
	}
	return nil
}

func countMealLines(cart []entities.CartItem) int {
	n := 0
	for _, line := range cart {
		if pricing.Classify(line.Meal) == pricing.LineMeal {
			n++
		}
	}
	return n
}

func (u *orderUpserter) upsert(
	ctx context.Context,
	customer entities.Customer,
	cart []entities.CartItem,
	allergens pricing.AllergenBreakdown,
) (SubmissionResult, error) {
	now := time.Now().UTC()
	weekOf := pricing.WeekOf(now)

	existing, err := u.orders.GetActiveByCustomerWeek(ctx, customer.ID, weekOf)
	if err != nil {
		return SubmissionResult{}, err
	}
	if existing.ID != "" {
		return u.amend(ctx, existing, customer, cart, allergens, now)
	}

	res, err := u.create(ctx, customer, cart, allergens, weekOf, now)
	if errors.Is(err, interfaces.ErrDuplicateOrderWeek) {
		// Lost the creation race: someone persisted this week's order
		// between our lookup and the conditional put. Re-read once and
		// amend instead.
		log.Printf("[order][usecase] create conflict, retrying as amend customer_id=%s week_of=%s", customer.ID, weekOf.Format("2006-01-02"))
		existing, err = u.orders.GetActiveByCustomerWeek(ctx, customer.ID, weekOf)
		if err != nil {
			return SubmissionResult{}, err
		}
		if existing.ID == "" {
			return SubmissionResult{}, interfaces.ErrDuplicateOrderWeek
		}
		return u.amend(ctx, existing, customer, cart, allergens, now)
	}
	return res, err
}

func (u *orderUpserter) decide(customer entities.Customer, cart []entities.CartItem, bc pricing.BillingContext) pricing.Decision {
	// The tier resolver is only consulted when plan-bundled meal lines are
	// actually selected; a snack-only cart has a zero meal subtotal and no
	// credit interaction regardless of frequency.
	if countMealLines(cart) == 0 {
		return pricing.Decision{MealSubtotal: decimal.Zero, IsCreditUsed: bc.IsUpdate && bc.ExistingCreditUsed}
	}
	base := pricing.ResolveBaseWeekly(customer.Tier, customer.Plan)
	return pricing.Decide(base.Total, bc)
}

func (u *orderUpserter) create(
	ctx context.Context,
	customer entities.Customer,
	cart []entities.CartItem,
	allergens pricing.AllergenBreakdown,
	weekOf, now time.Time,
) (SubmissionResult, error) {
	decision := u.decide(customer, cart, pricing.BillingContext{
		Frequency:   customer.SubscriptionFrequency,
		PlanCredits: customer.PlanCredits,
	})
	totals := pricing.ComposeTotals(cart, decision.MealSubtotal, allergens)

	seq, err := u.sequence.Next(ctx, fmt.Sprintf("orders-%d", now.Year()))
	if err != nil {
		return SubmissionResult{}, err
	}

	order := entities.Order{
		ID:                    uuid.NewString(),
		OrderNumber:           fmt.Sprintf("ORD-%d-%06d", now.Year(), seq),
		CustomerID:            customer.ID,
		Status:                entities.OrderStatusPending,
		WeekOf:                weekOf,
		IsCreditUsed:          decision.IsCreditUsed,
		OrderItems:            totals.Items,
		AllergenCharges:       totals.AllergenCharges,
		TotalAllergenCharges:  totals.TotalAllergenCharges,
		Subtotal:              totals.Subtotal,
		SubtotalWithAllergens: totals.SubtotalWithAllergens,
		TaxAmount:             totals.TaxAmount,
		TotalAmount:           totals.TotalAmount,
		WeekHalf:              totals.WeekHalf,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	created, err := u.orders.Create(ctx, order)
	if err != nil {
		return SubmissionResult{}, err
	}
	log.Printf("[order][usecase] order created customer_id=%s order_number=%s total=%.2f credit_used=%t",
		customer.ID, created.OrderNumber, created.TotalAmount, created.IsCreditUsed)

	// Credit side effects only after the order write is confirmed, so a
	// failed persistence never moves the balance.
	if decision.ConsumeCredit {
		ok, err := u.customers.TryConsumeCredit(ctx, customer.ID)
		if err != nil {
			return SubmissionResult{}, err
		}
		if !ok {
			// A concurrent submission drained the balance between the
			// pricing read and this decrement.
			log.Printf("[order][usecase] credit consume raced to zero customer_id=%s order_number=%s", customer.ID, created.OrderNumber)
		}
	}
	if decision.GrantCredits > 0 {
		if err := u.customers.GrantCredits(ctx, customer.ID, decision.GrantCredits); err != nil {
			return SubmissionResult{}, err
		}
		log.Printf("[order][usecase] credits granted customer_id=%s credits=%d", customer.ID, decision.GrantCredits)
	}

	return SubmissionResult{Order: created, Created: true}, nil
}

func (u *orderUpserter) amend(
	ctx context.Context,
	existing entities.Order,
	customer entities.Customer,
	cart []entities.CartItem,
	allergens pricing.AllergenBreakdown,
	now time.Time,
) (SubmissionResult, error) {
	if !existing.Status.Amendable() {
		return SubmissionResult{}, ErrOrderLocked
	}

	decision := u.decide(customer, cart, pricing.BillingContext{
		IsUpdate:           true,
		ExistingCreditUsed: existing.IsCreditUsed,
		Frequency:          customer.SubscriptionFrequency,
		PlanCredits:        customer.PlanCredits,
	})
	totals := pricing.ComposeTotals(cart, decision.MealSubtotal, allergens)

	logEntry := entities.OrderLog{
		ID:            uuid.NewString(),
		OrderID:       existing.ID,
		PreviousItems: existing.OrderItems,
		NewItems:      totals.Items,
		PreviousTotal: existing.TotalAmount,
		NewTotal:      totals.TotalAmount,
		CreatedAt:     now,
	}
	if _, err := u.logs.Append(ctx, logEntry); err != nil {
		return SubmissionResult{}, err
	}

	// Identity stays fixed on amendment: order number, weekOf and the
	// credit flag were committed at creation.
	existing.OrderItems = totals.Items
	existing.AllergenCharges = totals.AllergenCharges
	existing.TotalAllergenCharges = totals.TotalAllergenCharges
	existing.Subtotal = totals.Subtotal
	existing.SubtotalWithAllergens = totals.SubtotalWithAllergens
	existing.TaxAmount = totals.TaxAmount
	existing.TotalAmount = totals.TotalAmount
	existing.WeekHalf = totals.WeekHalf
	existing.UpdatedAt = now

	updated, err := u.orders.UpdateItems(ctx, existing)
	if err != nil {
		return SubmissionResult{}, err
	}
	log.Printf("[order][usecase] order amended customer_id=%s order_number=%s total=%.2f",
		customer.ID, updated.OrderNumber, updated.TotalAmount)

	return SubmissionResult{Order: updated, Created: false}, nil
}
