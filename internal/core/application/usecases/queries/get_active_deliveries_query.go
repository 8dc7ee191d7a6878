package queries

import (
	"errors"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrGetActiveDeliveriesQueryIsNotConstructed = errors.New(
	"GetActiveDeliveriesQuery must be created via NewGetActiveDeliveriesQuery constructor",
)

// GetActiveDeliveriesQuery retrieves delivery legs that are not yet delivered
// or cancelled, for the courier dispatch board.
type GetActiveDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveDeliveriesQuery creates a query for active delivery legs. This
// is a parameterless query.
func NewGetActiveDeliveriesQuery() GetActiveDeliveriesQuery {
	return GetActiveDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveDeliveriesQueryIsNotConstructed)
}

// GetActiveDeliveriesQueryResponse is the read model of one in-flight leg.
// CourierID is nil while the leg waits for a courier to accept it.
type GetActiveDeliveriesQueryResponse struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Kind      string
	CourierID *kernel.UUID
	Status    string
	CreatedAt time.Time
}
