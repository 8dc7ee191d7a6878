package offer

import (
	"errors"
	"fmt"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/errs"
)

var (
	// ErrOfferIsNotConstructed is returned when an Offer instance was not
	// created through NewOffer or RestoreOffer.
	ErrOfferIsNotConstructed = errors.New("Offer must be created via NewOffer constructor")

	// ErrEtaIsRequired is returned when a cleaner bids without an estimated
	// turnaround.
	ErrEtaIsRequired = errors.New("eta is required")
)

// Status tracks what happened to a bid after the client made a choice.
// Offers are never deleted: losing bids are superseded, not removed.
type Status int

const (
	// StatusUnknown represents an invalid or undefined offer status.
	StatusUnknown Status = iota

	// Pending means the client has not decided yet.
	Pending

	// Accepted means this is the offer the client chose.
	Accepted

	// Superseded means another offer on the same order was accepted.
	Superseded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown: "unknown",
		Pending:       "pending",
		Accepted:      "accepted",
		Superseded:    "superseded",
	}
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("offer status",
			fmt.Errorf("%d is not a valid offer status", int(s)))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("offer status",
			fmt.Errorf("%d is not a valid offer status", int(s)))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StatusFromString parses the stored representation of a status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("offer status",
		fmt.Errorf("%q is not a valid offer status", s))
}

// Offer is a cleaner's priced bid on an order. The proposed price, comment,
// and ETA are immutable once created; only the status moves, and only from
// Pending.
type Offer struct {
	id            kernel.UUID
	orderID       kernel.UUID
	cleanerID     kernel.UUID
	partnerID     *kernel.UUID
	proposedPrice kernel.Price
	comment       string
	eta           string
	status        Status
	createdAt     time.Time

	isConstructed bool
}

// NewOffer creates a pending Offer. partnerID is non-nil when the bid comes
// from a partner business rather than an individual cleaner; accepting such
// a bid routes the order through the partner/courier flow.
func NewOffer(
	id kernel.UUID,
	orderID kernel.UUID,
	cleanerID kernel.UUID,
	partnerID *kernel.UUID,
	proposedPrice kernel.Price,
	comment string,
	eta string,
) (*Offer, error) {
	offer := &Offer{
		partnerID:     partnerID,
		comment:       comment,
		status:        Pending,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		offer.setID(id),
		offer.setOrderID(orderID),
		offer.setCleanerID(cleanerID),
		offer.setProposedPrice(proposedPrice),
		offer.setEta(eta),
	); err != nil {
		return nil, err
	}

	return offer, nil
}

// RestoreOffer reconstructs an Offer from persistence.
func RestoreOffer(
	id kernel.UUID,
	orderID kernel.UUID,
	cleanerID kernel.UUID,
	partnerID *kernel.UUID,
	proposedPrice kernel.Price,
	comment string,
	eta string,
	status Status,
	createdAt time.Time,
) (*Offer, error) {
	offer := &Offer{
		partnerID:     partnerID,
		comment:       comment,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		offer.setID(id),
		offer.setOrderID(orderID),
		offer.setCleanerID(cleanerID),
		offer.setProposedPrice(proposedPrice),
		offer.setEta(eta),
		offer.setStatus(status),
	); err != nil {
		return nil, err
	}

	return offer, nil
}

// Validate ensures the Offer instance was properly constructed.
func (o *Offer) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOfferIsNotConstructed
	}
	return nil
}

// ID returns the offer's unique identifier.
func (o *Offer) ID() kernel.UUID {
	return o.id
}

// OrderID returns the order this offer bids on.
func (o *Offer) OrderID() kernel.UUID {
	return o.orderID
}

// CleanerID returns the bidding cleaner.
func (o *Offer) CleanerID() kernel.UUID {
	return o.cleanerID
}

// PartnerID returns the partner business behind the bid, or nil for an
// individual cleaner.
func (o *Offer) PartnerID() *kernel.UUID {
	return o.partnerID
}

// IsPartnerOffer reports whether the bid comes from a partner business.
func (o *Offer) IsPartnerOffer() bool {
	return o.partnerID != nil
}

// ProposedPrice returns the bid amount.
func (o *Offer) ProposedPrice() kernel.Price {
	return o.proposedPrice
}

// Comment returns the cleaner's free-form pitch.
func (o *Offer) Comment() string {
	return o.comment
}

// Eta returns the promised turnaround, e.g. "2 days".
func (o *Offer) Eta() string {
	return o.eta
}

// Status returns the offer status.
func (o *Offer) Status() Status {
	return o.status
}

// CreatedAt returns the bid timestamp.
func (o *Offer) CreatedAt() time.Time {
	return o.createdAt
}

// Accept marks this offer as the one the client chose. Only pending offers
// can be accepted.
func (o *Offer) Accept() error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError(o.status.String(), Accepted.String())
	}
	o.status = Accepted
	return nil
}

// Supersede marks this offer as passed over because a sibling offer was
// accepted. Only pending offers can be superseded.
func (o *Offer) Supersede() error {
	if o.status != Pending {
		return errs.NewInvalidTransitionError(o.status.String(), Superseded.String())
	}
	o.status = Superseded
	return nil
}

func (o *Offer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Offer) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	o.orderID = orderID
	return nil
}

func (o *Offer) setCleanerID(cleanerID kernel.UUID) error {
	if err := cleanerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("cleanerID", err)
	}
	o.cleanerID = cleanerID
	return nil
}

func (o *Offer) setProposedPrice(price kernel.Price) error {
	if err := price.Validate(); err != nil {
		return err
	}
	o.proposedPrice = price
	return nil
}

func (o *Offer) setEta(eta string) error {
	if eta == "" {
		return ErrEtaIsRequired
	}
	o.eta = eta
	return nil
}

func (o *Offer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
