package queries

import (
	"errors"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrGetOrderOffersQueryIsNotConstructed = errors.New(
	"GetOrderOffersQuery must be created via NewGetOrderOffersQuery constructor",
)

// GetOrderOffersQuery retrieves every offer placed on one order, each scored
// against the market average, with the most recommendable one flagged.
type GetOrderOffersQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderOffersQuery creates a query for the offers on an order.
func NewGetOrderOffersQuery(orderID kernel.UUID) (GetOrderOffersQuery, error) {
	query := GetOrderOffersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setOrderID(orderID); err != nil {
		return GetOrderOffersQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderOffersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderOffersQueryIsNotConstructed)
}

// OrderID returns the order whose offers are requested.
func (q GetOrderOffersQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q *GetOrderOffersQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

// GetOrderOffersQueryResponse is the read model of one offer as shown to the
// client choosing between bids.
type GetOrderOffersQueryResponse struct {
	ID            kernel.UUID
	CleanerID     kernel.UUID
	PartnerID     *kernel.UUID
	ProposedPrice float64
	Comment       string
	Eta           string
	Status        string
	Band          string
	BandLabel     string
	Recommended   bool
	CreatedAt     time.Time
}
