package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"mealweek/internal/domain/entities"
	"mealweek/internal/usecase/interfaces"
	mock_interfaces "mealweek/internal/usecase/interfaces/mocks"
)

type submissionMocks struct {
	customers *mock_interfaces.MockICustomerRepository
	orders    *mock_interfaces.MockIOrderRepository
	logs      *mock_interfaces.MockIOrderLogRepository
	sequence  *mock_interfaces.MockIOrderSequence
}

func newSubmissionUseCase(t *testing.T) (*OrderSubmissionUseCase, submissionMocks) {
	ctrl := gomock.NewController(t)
	m := submissionMocks{
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		orders:    mock_interfaces.NewMockIOrderRepository(ctrl),
		logs:      mock_interfaces.NewMockIOrderLogRepository(ctrl),
		sequence:  mock_interfaces.NewMockIOrderSequence(ctrl),
	}
	return NewOrderSubmissionUseCase(m.customers, m.orders, m.logs, m.sequence), m
}

func weeklyCustomer() entities.Customer {
	return entities.Customer{
		ID:                    "cust-1",
		Email:                 "sam@example.com",
		Tier:                  &entities.Tier{ID: "t-1", Name: "Tier 1", SinglePrice: 10},
		SubscriptionFrequency: entities.FrequencyWeekly,
		Plan:                  entities.PlanConfig{DaysPerWeek: 5, MealsPerDay: 2},
	}
}

func entreeCart() []entities.CartItem {
	return []entities.CartItem{{
		Meal:     entities.MenuItem{ID: "m-1", Name: "Chicken Bowl", Category: "entree"},
		Quantity: 1,
		WeekHalf: entities.WeekHalfFirst,
	}}
}

func TestOrderSubmissionUseCase_Validation(t *testing.T) {
	t.Run("invalid customer id", func(t *testing.T) {
		uc := NewOrderSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "   ", entreeCart())
		if !errors.Is(err, ErrInvalidCustomerID) {
			t.Fatalf("expected ErrInvalidCustomerID, got %v", err)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		uc := NewOrderSubmissionUseCase(nil, nil, nil, nil)
		_, err := uc.Submit(context.Background(), "cust-1", nil)
		if !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("cart item without meal id", func(t *testing.T) {
		uc := NewOrderSubmissionUseCase(nil, nil, nil, nil)
		cart := []entities.CartItem{{Quantity: 1}}
		_, err := uc.Submit(context.Background(), "cust-1", cart)
		if !errors.Is(err, ErrInvalidCartItem) {
			t.Fatalf("expected ErrInvalidCartItem, got %v", err)
		}
	})

	t.Run("customer not found", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, nil)

		_, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("customer lookup error propagates", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(entities.Customer{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderSubmissionUseCase_CreateWeekly(t *testing.T) {
	uc, m := newSubmissionUseCase(t)
	customer := weeklyCustomer()

	m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
	m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(42), nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.Subtotal != 90.00 {
				t.Fatalf("expected weekly subtotal 90.00, got %v", o.Subtotal)
			}
			if o.TaxAmount != 7.43 {
				t.Fatalf("expected tax 7.43, got %v", o.TaxAmount)
			}
			if o.TotalAmount != 97.43 {
				t.Fatalf("expected total 97.43, got %v", o.TotalAmount)
			}
			if o.IsCreditUsed {
				t.Fatalf("weekly order must not use a credit")
			}
			if o.Status != entities.OrderStatusPending {
				t.Fatalf("expected pending status, got %s", o.Status)
			}
			if o.OrderNumber == "" || o.ID == "" {
				t.Fatalf("expected assigned identity: %+v", o)
			}
			return o, nil
		},
	)

	res, err := uc.Submit(context.Background(), "cust-1", entreeCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Created {
		t.Fatalf("expected a created order")
	}
}

func TestOrderSubmissionUseCase_MonthlyCreditCycle(t *testing.T) {
	t.Run("no credits bills a month and grants three", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		customer := weeklyCustomer()
		customer.SubscriptionFrequency = entities.FrequencyMonthly
		customer.PlanCredits = 0

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Subtotal != 340.00 {
					t.Fatalf("expected monthly subtotal 340.00, got %v", o.Subtotal)
				}
				if o.IsCreditUsed {
					t.Fatalf("full monthly purchase must not flag credit use")
				}
				return o, nil
			},
		)
		m.customers.EXPECT().GrantCredits(gomock.Any(), "cust-1", 3).Return(nil)

		if _, err := uc.Submit(context.Background(), "cust-1", entreeCart()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("available credit is consumed and meals are free", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		customer := weeklyCustomer()
		customer.SubscriptionFrequency = entities.FrequencyMonthly
		customer.PlanCredits = 3

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(2), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.Subtotal != 0.00 {
					t.Fatalf("expected free meal week, got subtotal %v", o.Subtotal)
				}
				if !o.IsCreditUsed {
					t.Fatalf("expected credit-paid order")
				}
				return o, nil
			},
		)
		m.customers.EXPECT().TryConsumeCredit(gomock.Any(), "cust-1").Return(true, nil)

		if _, err := uc.Submit(context.Background(), "cust-1", entreeCart()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("credit grant failure propagates", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		customer := weeklyCustomer()
		customer.SubscriptionFrequency = entities.FrequencyMonthly

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
		m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(3), nil)
		m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
		)
		m.customers.EXPECT().GrantCredits(gomock.Any(), "cust-1", 3).Return(errors.New("db"))

		_, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderSubmissionUseCase_AllergenSurcharge(t *testing.T) {
	uc, m := newSubmissionUseCase(t)
	customer := weeklyCustomer()
	customer.Allergies = []string{"Dairy"}

	cart := []entities.CartItem{{
		Meal:     entities.MenuItem{ID: "m-1", Name: "Mac & Cheese", Category: "entree", Allergens: []string{"Dairy"}},
		Quantity: 2,
		WeekHalf: entities.WeekHalfFirst,
	}}

	m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
	m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(7), nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			if o.TotalAllergenCharges != 10.00 {
				t.Fatalf("expected allergen charges 10.00, got %v", o.TotalAllergenCharges)
			}
			if o.SubtotalWithAllergens != 100.00 {
				t.Fatalf("expected 100.00, got %v", o.SubtotalWithAllergens)
			}
			if o.TaxAmount != 8.25 {
				t.Fatalf("expected tax 8.25, got %v", o.TaxAmount)
			}
			if o.TotalAmount != 108.25 {
				t.Fatalf("expected total 108.25, got %v", o.TotalAmount)
			}
			return o, nil
		},
	)

	if _, err := uc.Submit(context.Background(), "cust-1", cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestOrderSubmissionUseCase_Amend(t *testing.T) {
	weekOf := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	existing := entities.Order{
		ID:           "order-1",
		OrderNumber:  "ORD-2026-000042",
		CustomerID:   "cust-1",
		Status:       entities.OrderStatusPending,
		WeekOf:       weekOf,
		IsCreditUsed: true,
		OrderItems: []entities.OrderItem{{
			MenuItemID: "m-0", Name: "Old Meal", Quantity: 1, WeekHalf: entities.WeekHalfFirst,
		}},
		TotalAmount: 50.00,
	}

	t.Run("amendment preserves identity and logs the change", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		customer := weeklyCustomer()
		customer.SubscriptionFrequency = entities.FrequencyMonthly

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(existing, nil)
		m.logs.EXPECT().Append(gomock.Any(), gomock.AssignableToTypeOf(entities.OrderLog{})).DoAndReturn(
			func(_ context.Context, l entities.OrderLog) (entities.OrderLog, error) {
				if l.OrderID != "order-1" {
					t.Fatalf("expected log for order-1, got %s", l.OrderID)
				}
				if len(l.PreviousItems) != 1 || l.PreviousItems[0].MenuItemID != "m-0" {
					t.Fatalf("expected previous items captured: %+v", l.PreviousItems)
				}
				if l.PreviousTotal != 50.00 {
					t.Fatalf("expected previous total 50.00, got %v", l.PreviousTotal)
				}
				return l, nil
			},
		)
		m.orders.EXPECT().UpdateItems(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.OrderNumber != "ORD-2026-000042" {
					t.Fatalf("order number must not change, got %s", o.OrderNumber)
				}
				if !o.WeekOf.Equal(weekOf) {
					t.Fatalf("weekOf must not change, got %s", o.WeekOf)
				}
				if !o.IsCreditUsed {
					t.Fatalf("credit flag must not change")
				}
				// Credit-paid week stays free on amendment.
				if o.Subtotal != 0.00 {
					t.Fatalf("expected zero subtotal, got %v", o.Subtotal)
				}
				if len(o.OrderItems) != 1 || o.OrderItems[0].MenuItemID != "m-1" {
					t.Fatalf("expected new items: %+v", o.OrderItems)
				}
				return o, nil
			},
		)

		res, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Created {
			t.Fatalf("expected an update, not a creation")
		}
	})

	t.Run("order advanced past confirmed is locked", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)
		locked := existing
		locked.Status = entities.OrderStatusDelivered

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(weeklyCustomer(), nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(locked, nil)

		_, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if !errors.Is(err, ErrOrderLocked) {
			t.Fatalf("expected ErrOrderLocked, got %v", err)
		}
	})

	t.Run("log append failure propagates before the order write", func(t *testing.T) {
		uc, m := newSubmissionUseCase(t)

		m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(weeklyCustomer(), nil)
		m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(existing, nil)
		m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.OrderLog{}, errors.New("db"))

		_, err := uc.Submit(context.Background(), "cust-1", entreeCart())
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestOrderSubmissionUseCase_CreateConflictRetriesAsAmend(t *testing.T) {
	uc, m := newSubmissionUseCase(t)
	customer := weeklyCustomer()

	weekOf := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	raced := entities.Order{
		ID:          "order-2",
		OrderNumber: "ORD-2026-000099",
		CustomerID:  "cust-1",
		Status:      entities.OrderStatusPending,
		WeekOf:      weekOf,
		TotalAmount: 97.43,
	}

	m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	first := m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
	m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(100), nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Order{}, interfaces.ErrDuplicateOrderWeek)
	m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(raced, nil).After(first)
	m.logs.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, l entities.OrderLog) (entities.OrderLog, error) { return l, nil },
	)
	m.orders.EXPECT().UpdateItems(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) { return o, nil },
	)

	res, err := uc.Submit(context.Background(), "cust-1", entreeCart())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Created {
		t.Fatalf("expected the conflict to resolve as an amendment")
	}
	if res.Order.OrderNumber != "ORD-2026-000099" {
		t.Fatalf("expected the raced order identity, got %s", res.Order.OrderNumber)
	}
}

func TestOrderSubmissionUseCase_SnackOnly(t *testing.T) {
	uc, m := newSubmissionUseCase(t)
	customer := weeklyCustomer()
	customer.SubscriptionFrequency = entities.FrequencyMonthly
	customer.PlanCredits = 2

	cart := []entities.CartItem{{
		Meal:     entities.MenuItem{ID: "s-1", Name: "Trail Mix", Category: entities.CategorySnack, Price: 4.50},
		Quantity: 2,
		WeekHalf: entities.WeekHalfFirst,
	}}

	m.customers.EXPECT().GetByID(gomock.Any(), "cust-1").Return(customer, nil)
	m.orders.EXPECT().GetActiveByCustomerWeek(gomock.Any(), "cust-1", gomock.Any()).Return(entities.Order{}, nil)
	m.sequence.EXPECT().Next(gomock.Any(), gomock.Any()).Return(int64(5), nil)
	m.orders.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o entities.Order) (entities.Order, error) {
			// No plan purchase: meal subtotal is zero and no credit moves.
			if o.Subtotal != 9.00 {
				t.Fatalf("expected snack subtotal 9.00, got %v", o.Subtotal)
			}
			if o.IsCreditUsed {
				t.Fatalf("snack-only order must not consume a credit")
			}
			return o, nil
		},
	)

	if _, err := uc.Submit(context.Background(), "cust-1", cart); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
