package ports

import (
	"context"

	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for courier legs.
type DeliveryRepository interface {
	// Add persists a new delivery leg to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery leg.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery leg by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetAllForOrder retrieves every leg created for the given order.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*delivery.Delivery, error)

	// GetAllUnassigned retrieves legs waiting for a courier, oldest first.
	GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error)

	// GetAllActive retrieves legs that are assigned but not yet delivered
	// or cancelled.
	GetAllActive(ctx context.Context) ([]*delivery.Delivery, error)
}
