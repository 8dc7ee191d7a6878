package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrAcceptOfferCommandIsNotConstructed = errors.New(
	"AcceptOfferCommand must be created via NewAcceptOfferCommand constructor",
)

// AcceptOfferCommand represents the client choosing one specific offer on
// their order. Accepting freezes the price, pins the cleaner (and partner,
// for partner bids), and supersedes every competing offer.
type AcceptOfferCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	offerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOfferCommand creates a command to accept an offer on an order.
func NewAcceptOfferCommand(orderID, offerID kernel.UUID) (AcceptOfferCommand, error) {
	cmd := AcceptOfferCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOfferID(offerID),
	); err != nil {
		return AcceptOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptOfferCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOfferCommandIsNotConstructed)
}

// OrderID returns the order whose offer is accepted.
func (c AcceptOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OfferID returns the chosen offer.
func (c AcceptOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

func (c *AcceptOfferCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AcceptOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}
