package queries

import (
	"context"

	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetActiveDeliveriesQueryHandler reads in-flight delivery legs from the
// database.
type GetActiveDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveDeliveriesQueryHandler creates a handler for active delivery
// queries. Requires a GORM database connection for query execution.
func NewGetActiveDeliveriesQueryHandler(db *gorm.DB) GetActiveDeliveriesQueryHandler {
	return GetActiveDeliveriesQueryHandler{db: db}
}

// Handle executes the query. Returns unfinished legs oldest first; unassigned
// legs come back with a nil CourierID.
func (h GetActiveDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetActiveDeliveriesQuery,
) ([]GetActiveDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	legs := make([]GetActiveDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			kind,
			courier_id,
			status,
			created_at
		FROM deliveries
		WHERE status NOT IN (?, ?)
		ORDER BY created_at
	`, delivery.StatusDelivered, delivery.StatusCancelled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var courierID *uuid.UUID
		var kind delivery.Kind
		var status delivery.Status

		err = rows.Scan(&id, &orderID, &kind, &courierID, &status, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		legID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = legID

		subjectID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = subjectID

		if courierID != nil {
			carrierID, carrierErr := kernel.UUIDFromBytes((*courierID)[:])
			if carrierErr != nil {
				return nil, carrierErr
			}
			resp.CourierID = &carrierID
		}

		resp.Kind = kind.String()
		resp.Status = status.String()
		legs = append(legs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return legs, nil
}
