// Package clientrepo persists client accounts and their loyalty balance.
package clientrepo

import (
	"taza/internal/core/domain/model/client"
	"taza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ClientDTO represents the database structure for persisting clients.
type ClientDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name          string
	LoyaltyPoints int
}

// TableName overrides GORM's default naming to use "clients".
func (ClientDTO) TableName() string {
	return "clients"
}

func fromDomain(aggregate *client.Client) ClientDTO {
	return ClientDTO{
		ID:            aggregate.ID().Bytes(),
		Name:          aggregate.Name(),
		LoyaltyPoints: aggregate.LoyaltyPoints(),
	}
}

func toDomain(dto ClientDTO) (*client.Client, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return client.RestoreClient(id, dto.Name, dto.LoyaltyPoints)
}
