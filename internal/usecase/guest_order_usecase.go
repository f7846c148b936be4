package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"mealweek/internal/domain/entities"
	"mealweek/internal/domain/pricing"
	"mealweek/internal/usecase/interfaces"
)

var (
	ErrMissingGuestField = errors.New("missing guest customer field")
	ErrMissingTier       = errors.New("tier is required")
)

// Guest checkout assumes a fixed plan shape: weekly billing at 20 meals per
// week (5 days, 4 meals/day), no breakfast add-on.
const (
	guestDaysPerWeek = 5
	guestMealsPerDay = 4
)

// GuestInfo is the unauthenticated customer payload carried by a guest
// submission.
type GuestInfo struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Allergies []string
}

// GuestSubmissionResult pairs the coordinator outcome with the customer
// record that was created or updated as a byproduct.
type GuestSubmissionResult struct {
	SubmissionResult
	Customer entities.Customer
}

// IGuestOrderUseCase is the guest submission path: resolve-or-create the
// customer from the email, then run the same order upsert with guest plan
// defaults and the flat allergen surcharge.

type IGuestOrderUseCase interface {
	Submit(ctx context.Context, info GuestInfo, tier entities.Tier, cart []entities.CartItem) (GuestSubmissionResult, error)
}

type GuestOrderUseCase struct {
	orderUpserter
}

var _ IGuestOrderUseCase = (*GuestOrderUseCase)(nil)

func NewGuestOrderUseCase(
	customers interfaces.ICustomerRepository,
	orders interfaces.IOrderRepository,
	logs interfaces.IOrderLogRepository,
	sequence interfaces.IOrderSequence,
) *GuestOrderUseCase {
	return &GuestOrderUseCase{orderUpserter{
		customers: customers,
		orders:    orders,
		logs:      logs,
		sequence:  sequence,
	}}
}

func (u *GuestOrderUseCase) Submit(ctx context.Context, info GuestInfo, tier entities.Tier, cart []entities.CartItem) (GuestSubmissionResult, error) {
	if err := validateGuestInfo(info); err != nil {
		return GuestSubmissionResult{}, err
	}
	if strings.TrimSpace(tier.ID) == "" {
		return GuestSubmissionResult{}, ErrMissingTier
	}
	if err := validateCart(cart); err != nil {
		return GuestSubmissionResult{}, err
	}

	customer, err := u.resolveCustomer(ctx, info, tier)
	if err != nil {
		return GuestSubmissionResult{}, err
	}
	log.Printf("[order][usecase] guest submit customer_id=%s email=%s lines=%d", customer.ID, customer.Email, len(cart))

	// Guest channel: flat per-order surcharge on any declared allergy.
	allergens := pricing.FlatGuestSurcharge(customer.Allergies)

	res, err := u.upsert(ctx, customer, cart, allergens)
	if err != nil {
		return GuestSubmissionResult{}, err
	}
	return GuestSubmissionResult{SubmissionResult: res, Customer: customer}, nil
}

// resolveCustomer reuses an existing record matched by email or creates a
// fresh one, in both cases overwriting tier, allergies and plan fields with
// the guest defaults. An existing credit balance is kept.
func (u *GuestOrderUseCase) resolveCustomer(ctx context.Context, info GuestInfo, tier entities.Tier) (entities.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(info.Email))
	now := time.Now().UTC()

	customer, err := u.customers.GetByEmail(ctx, email)
	if err != nil {
		return entities.Customer{}, err
	}
	if customer.ID == "" {
		customer = entities.Customer{
			ID:        uuid.NewString(),
			Email:     email,
			CreatedAt: now,
		}
	}

	customer.FirstName = strings.TrimSpace(info.FirstName)
	customer.LastName = strings.TrimSpace(info.LastName)
	customer.Phone = strings.TrimSpace(info.Phone)
	customer.Tier = &tier
	customer.Allergies = info.Allergies
	customer.SubscriptionFrequency = entities.FrequencyWeekly
	customer.Plan = entities.PlanConfig{
		DaysPerWeek:      guestDaysPerWeek,
		MealsPerDay:      guestMealsPerDay,
		IncludeBreakfast: false,
	}
	customer.UpdatedAt = now

	return u.customers.Upsert(ctx, customer)
}

func validateGuestInfo(info GuestInfo) error {
	if strings.TrimSpace(info.FirstName) == "" {
		return fmt.Errorf("%w: firstName", ErrMissingGuestField)
	}
	if strings.TrimSpace(info.LastName) == "" {
		return fmt.Errorf("%w: lastName", ErrMissingGuestField)
	}
	if strings.TrimSpace(info.Email) == "" {
		return fmt.Errorf("%w: email", ErrMissingGuestField)
	}
	return nil
}
