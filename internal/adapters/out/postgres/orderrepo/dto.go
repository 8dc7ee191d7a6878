// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The Taza Index evaluation is flattened into scalar columns so the read side
// can query fairness bands without rehydrating the aggregate.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID          uuid.UUID  `gorm:"type:uuid;index"`
	Category          int        `gorm:"index"`
	PriceOffer        float64    `gorm:"type:decimal(12,2)"`
	Status            int        `gorm:"index"`
	CleanerID         *uuid.UUID `gorm:"type:uuid"`
	PartnerID         *uuid.UUID `gorm:"type:uuid"`
	CourierID         *uuid.UUID `gorm:"type:uuid"`
	TazaIndex         int
	DeltaPercent      int
	Band              int
	RecommendedPrice  float64 `gorm:"type:decimal(12,2)"`
	ProtectionEnabled bool
	CreatedAt         time.Time
	CompletedAt       *time.Time
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	evaluation := aggregate.TazaIndex()

	return OrderDTO{
		ID:                aggregate.ID().Bytes(),
		ClientID:          aggregate.ClientID().Bytes(),
		Category:          int(aggregate.Category()),
		PriceOffer:        aggregate.PriceOffer().Value(),
		Status:            int(aggregate.Status()),
		CleanerID:         uuidBytes(aggregate.ChosenCleaner()),
		PartnerID:         uuidBytes(aggregate.Partner()),
		CourierID:         uuidBytes(aggregate.Courier()),
		TazaIndex:         evaluation.Index,
		DeltaPercent:      evaluation.DeltaPercent,
		Band:              int(evaluation.Band),
		RecommendedPrice:  evaluation.RecommendedPrice,
		ProtectionEnabled: evaluation.ProtectionEnabled,
		CreatedAt:         aggregate.CreatedAt(),
		CompletedAt:       aggregate.CompletedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including the Taza Index snapshot
// and role references using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}

	cleanerID, err := uuidFromBytes(dto.CleanerID)
	if err != nil {
		return nil, err
	}

	partnerID, err := uuidFromBytes(dto.PartnerID)
	if err != nil {
		return nil, err
	}

	courierID, err := uuidFromBytes(dto.CourierID)
	if err != nil {
		return nil, err
	}

	priceOffer, err := kernel.NewPrice(dto.PriceOffer)
	if err != nil {
		return nil, err
	}

	evaluation := pricing.Evaluation{
		Index:             dto.TazaIndex,
		DeltaPercent:      dto.DeltaPercent,
		Band:              pricing.Band(dto.Band),
		RecommendedPrice:  dto.RecommendedPrice,
		ProtectionEnabled: dto.ProtectionEnabled,
	}

	return order.RestoreOrder(
		id,
		clientID,
		order.Category(dto.Category),
		priceOffer,
		order.Status(dto.Status),
		cleanerID,
		partnerID,
		courierID,
		evaluation,
		dto.CreatedAt,
		dto.CompletedAt,
	)
}

func uuidBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func uuidFromBytes(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absent optional reference
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
