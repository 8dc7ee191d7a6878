package ports

import (
	"context"

	"taza/internal/core/domain/model/order"
)

// OrderEventPublisher emits order lifecycle events to interested consumers
// after a business transaction commits.
type OrderEventPublisher interface {
	// Publish emits the current state of the order as a lifecycle event.
	Publish(ctx context.Context, aggregate *order.Order) error
}
