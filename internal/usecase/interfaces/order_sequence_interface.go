package interfaces

import "context"

// IOrderSequence hands out monotonically increasing sequence values for
// order-number assignment, atomic at the storage layer.

type IOrderSequence interface {
	Next(ctx context.Context, name string) (int64, error)
}
