package ports

import (
	"context"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/offer"
)

// OfferRepository defines the persistence contract for offer entities.
type OfferRepository interface {
	// Add persists a new offer to storage.
	Add(ctx context.Context, aggregate *offer.Offer) error

	// Update persists changes to an existing offer.
	Update(ctx context.Context, aggregate *offer.Offer) error

	// Get retrieves an offer by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error)

	// GetAllForOrder retrieves every offer placed on the given order,
	// regardless of status.
	GetAllForOrder(ctx context.Context, orderID kernel.UUID) ([]*offer.Offer, error)
}
