package interfaces

import (
	"context"
	"errors"
	"time"

	"mealweek/internal/domain/entities"
)

// ErrDuplicateOrderWeek is returned by Create when a non-cancelled order
// already exists for the (customer, weekOf) key. The coordinator treats it
// as a concurrency signal and retries the lookup-then-amend path once.
var ErrDuplicateOrderWeek = errors.New("order already exists for customer and week")

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The storage layer enforces at-most-one-non-cancelled-order per
// (customer, weekOf) via a conditional put on the composite key.

type IOrderRepository interface {
	// GetActiveByCustomerWeek returns the non-cancelled order for the
	// customer's billing week, or the zero Order when none exists.
	GetActiveByCustomerWeek(ctx context.Context, customerID string, weekOf time.Time) (entities.Order, error)

	Create(ctx context.Context, o entities.Order) (entities.Order, error)

	// UpdateItems rewrites the order's items, charges, totals and week
	// half in place. Identity fields (id, orderNumber, weekOf,
	// isCreditUsed) are never touched.
	UpdateItems(ctx context.Context, o entities.Order) (entities.Order, error)
}
