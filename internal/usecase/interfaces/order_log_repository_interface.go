package interfaces

import (
	"context"

	"mealweek/internal/domain/entities"
)

// IOrderLogRepository abstracts the append-only amendment audit trail.

type IOrderLogRepository interface {
	Append(ctx context.Context, l entities.OrderLog) (entities.OrderLog, error)
}
