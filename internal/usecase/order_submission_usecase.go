package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"mealweek/internal/domain/entities"
	"mealweek/internal/domain/pricing"
	"mealweek/internal/usecase/interfaces"
)

var ErrInvalidCustomerID = errors.New("invalid customer id")

// IOrderSubmissionUseCase is the authenticated submission path: price the
// selected meals against the customer's plan and upsert this week's order.

type IOrderSubmissionUseCase interface {
	Submit(ctx context.Context, customerID string, cart []entities.CartItem) (SubmissionResult, error)
}

type OrderSubmissionUseCase struct {
	orderUpserter
}

var _ IOrderSubmissionUseCase = (*OrderSubmissionUseCase)(nil)

func NewOrderSubmissionUseCase(
	customers interfaces.ICustomerRepository,
	orders interfaces.IOrderRepository,
	logs interfaces.IOrderLogRepository,
	sequence interfaces.IOrderSequence,
) *OrderSubmissionUseCase {
	return &OrderSubmissionUseCase{orderUpserter{
		customers: customers,
		orders:    orders,
		logs:      logs,
		sequence:  sequence,
	}}
}

func (u *OrderSubmissionUseCase) Submit(ctx context.Context, customerID string, cart []entities.CartItem) (SubmissionResult, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return SubmissionResult{}, ErrInvalidCustomerID
	}
	if err := validateCart(cart); err != nil {
		return SubmissionResult{}, err
	}

	customer, err := u.customers.GetByID(ctx, customerID)
	if err != nil {
		return SubmissionResult{}, err
	}
	if customer.ID == "" {
		return SubmissionResult{}, ErrCustomerNotFound
	}
	log.Printf("[order][usecase] submit start customer_id=%s lines=%d frequency=%s credits=%d",
		customer.ID, len(cart), customer.SubscriptionFrequency, customer.PlanCredits)

	// Authenticated channel: per-meal allergen matching.
	allergens := pricing.SurchargeForCart(cart, customer.Allergies)

	return u.upsert(ctx, customer, cart, allergens)
}
