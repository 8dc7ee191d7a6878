// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read directly from the database with raw SQL, bypassing
// the domain aggregates for performance.
package queries

import (
	"errors"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrGetOpenOrdersQueryIsNotConstructed = errors.New(
	"GetOpenOrdersQuery must be created via NewGetOpenOrdersQuery constructor",
)

// GetOpenOrdersQuery retrieves orders still collecting offers, for cleaners
// and partners browsing the marketplace.
type GetOpenOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenOrdersQuery creates a query for open orders. This is a
// parameterless query.
func NewGetOpenOrdersQuery() GetOpenOrdersQuery {
	return GetOpenOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenOrdersQueryIsNotConstructed)
}

// GetOpenOrdersQueryResponse is the browsing read model of one open order:
// what a bidder needs to decide whether and how much to bid.
type GetOpenOrdersQueryResponse struct {
	ID           kernel.UUID
	ClientID     kernel.UUID
	Category     string
	PriceOffer   float64
	Status       string
	TazaIndex    int
	Band         string
	ProtectionOn bool
	CreatedAt    time.Time
}
