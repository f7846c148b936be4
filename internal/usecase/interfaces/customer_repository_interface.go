package interfaces

import (
	"context"

	"mealweek/internal/domain/entities"
)

// ICustomerRepository abstracts DynamoDB persistence for Customer, including
// the credit capability.
//
// Credits are a shared mutable counter under concurrent submissions, so the
// mutation surface is deliberately narrow: a single conditional decrement
// and a single increment, both atomic at the storage layer. Application code
// never read-modify-writes plan_credits.

type ICustomerRepository interface {
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	GetByEmail(ctx context.Context, email string) (entities.Customer, error)
	Upsert(ctx context.Context, c entities.Customer) (entities.Customer, error)

	// TryConsumeCredit atomically decrements plan_credits when it is
	// positive. It returns false, without error, when no credit was
	// available to consume.
	TryConsumeCredit(ctx context.Context, customerID string) (bool, error)

	// GrantCredits atomically adds n credits to the customer.
	GrantCredits(ctx context.Context, customerID string, n int) error
}
