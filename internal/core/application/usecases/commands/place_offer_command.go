package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var (
	ErrPlaceOfferCommandIsNotConstructed = errors.New(
		"PlaceOfferCommand must be created via NewPlaceOfferCommand constructor",
	)
	ErrOfferEtaIsRequired = errors.New("eta is required")
)

// PlaceOfferCommand represents a cleaner (or partner business) bidding on an
// open order with a proposed price, an optional comment, and a turnaround
// estimate.
type PlaceOfferCommand struct { //nolint:recvcheck //using for validation
	offerID       kernel.UUID
	orderID       kernel.UUID
	cleanerID     kernel.UUID
	partnerID     *kernel.UUID
	proposedPrice kernel.Price
	comment       string
	eta           string

	guard guard.ConstructorGuard
}

// NewPlaceOfferCommand creates a command to bid on an order. partnerID is
// nil for individual cleaners; non-nil bids route the order through the
// partner flow when accepted.
func NewPlaceOfferCommand(
	offerID kernel.UUID,
	orderID kernel.UUID,
	cleanerID kernel.UUID,
	partnerID *kernel.UUID,
	proposedPrice kernel.Price,
	comment string,
	eta string,
) (PlaceOfferCommand, error) {
	cmd := PlaceOfferCommand{
		partnerID: partnerID,
		comment:   comment,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOfferID(offerID),
		cmd.setOrderID(orderID),
		cmd.setCleanerID(cleanerID),
		cmd.setProposedPrice(proposedPrice),
		cmd.setEta(eta),
	); err != nil {
		return PlaceOfferCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOfferCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOfferCommandIsNotConstructed)
}

// OfferID returns the unique identifier for the new offer.
func (c PlaceOfferCommand) OfferID() kernel.UUID {
	return c.offerID
}

// OrderID returns the order being bid on.
func (c PlaceOfferCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CleanerID returns the bidding cleaner's identifier.
func (c PlaceOfferCommand) CleanerID() kernel.UUID {
	return c.cleanerID
}

// PartnerID returns the partner business behind the bid, or nil.
func (c PlaceOfferCommand) PartnerID() *kernel.UUID {
	return c.partnerID
}

// ProposedPrice returns the bid amount.
func (c PlaceOfferCommand) ProposedPrice() kernel.Price {
	return c.proposedPrice
}

// Comment returns the free-form pitch.
func (c PlaceOfferCommand) Comment() string {
	return c.comment
}

// Eta returns the promised turnaround.
func (c PlaceOfferCommand) Eta() string {
	return c.eta
}

func (c *PlaceOfferCommand) setOfferID(offerID kernel.UUID) error {
	if err := offerID.Validate(); err != nil {
		return err
	}

	c.offerID = offerID
	return nil
}

func (c *PlaceOfferCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PlaceOfferCommand) setCleanerID(cleanerID kernel.UUID) error {
	if err := cleanerID.Validate(); err != nil {
		return err
	}

	c.cleanerID = cleanerID
	return nil
}

func (c *PlaceOfferCommand) setProposedPrice(proposedPrice kernel.Price) error {
	if err := proposedPrice.Validate(); err != nil {
		return err
	}

	c.proposedPrice = proposedPrice
	return nil
}

func (c *PlaceOfferCommand) setEta(eta string) error {
	if eta == "" {
		return ErrOfferEtaIsRequired
	}

	c.eta = eta
	return nil
}
