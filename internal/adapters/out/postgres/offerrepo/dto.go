// Package offerrepo persists cleaner and partner offers. It maps the Offer
// entity onto the "offers" table and back.
package offerrepo

import (
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/offer"

	"github.com/google/uuid"
)

// OfferDTO represents the database structure for persisting offers.
type OfferDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID       uuid.UUID  `gorm:"type:uuid;index"`
	CleanerID     uuid.UUID  `gorm:"type:uuid;index"`
	PartnerID     *uuid.UUID `gorm:"type:uuid"`
	ProposedPrice float64    `gorm:"type:decimal(12,2)"`
	Comment       string
	Eta           string
	Status        int `gorm:"index"`
	CreatedAt     time.Time
}

// TableName overrides GORM's default naming to use "offers".
func (OfferDTO) TableName() string {
	return "offers"
}

func fromDomain(aggregate *offer.Offer) OfferDTO {
	var partnerID *uuid.UUID
	if id := aggregate.PartnerID(); id != nil {
		raw := id.Bytes()
		partnerID = &raw
	}

	return OfferDTO{
		ID:            aggregate.ID().Bytes(),
		OrderID:       aggregate.OrderID().Bytes(),
		CleanerID:     aggregate.CleanerID().Bytes(),
		PartnerID:     partnerID,
		ProposedPrice: aggregate.ProposedPrice().Value(),
		Comment:       aggregate.Comment(),
		Eta:           aggregate.Eta(),
		Status:        int(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
	}
}

func toDomain(dto OfferDTO) (*offer.Offer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	cleanerID, err := kernel.UUIDFromBytes(dto.CleanerID[:])
	if err != nil {
		return nil, err
	}

	var partnerID *kernel.UUID
	if dto.PartnerID != nil {
		pID, partnerErr := kernel.UUIDFromBytes((*dto.PartnerID)[:])
		if partnerErr != nil {
			return nil, partnerErr
		}
		partnerID = &pID
	}

	proposedPrice, err := kernel.NewPrice(dto.ProposedPrice)
	if err != nil {
		return nil, err
	}

	return offer.RestoreOffer(
		id,
		orderID,
		cleanerID,
		partnerID,
		proposedPrice,
		dto.Comment,
		dto.Eta,
		offer.Status(dto.Status),
		dto.CreatedAt,
	)
}
