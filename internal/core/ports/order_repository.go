// Package ports defines repository and outbound interfaces for the
// marketplace domain. These interfaces establish contracts between the
// domain layer and infrastructure, enabling dependency inversion and
// testability.
package ports

import (
	"context"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllOpen retrieves orders still collecting offers, i.e. in New or
	// OffersReceived status. Used by cleaners browsing the marketplace.
	GetAllOpen(ctx context.Context) ([]*order.Order, error)

	// GetAllAwaitingCourier retrieves partner-flow orders that need a courier
	// leg: InProgress orders with a partner waiting for pickup, and
	// PartnerDone orders waiting for the return leg. Used by the dispatch job.
	GetAllAwaitingCourier(ctx context.Context) ([]*order.Order, error)

	// GetAllCompletedInCategory retrieves completed orders of a category.
	// Used to recompute the market average price.
	GetAllCompletedInCategory(ctx context.Context, category order.Category) ([]*order.Order, error)
}
