package order

import (
	"errors"
	"fmt"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/pricing"
	"taza/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrCleanerAlreadyChosen is returned when a second accept is attempted
	// or the price offer is changed after a cleaner has been chosen.
	ErrCleanerAlreadyChosen = errors.New("cleaner is already chosen for this order")

	// ErrOrderHasPartnerFlow is returned when a direct-flow action is
	// attempted on an order routed through a partner.
	ErrOrderHasPartnerFlow = errors.New("order is handled by a partner and requires the courier flow")

	// ErrOrderHasDirectFlow is returned when a partner/courier action is
	// attempted on a direct-flow order.
	ErrOrderHasDirectFlow = errors.New("order has no partner and follows the direct flow")
)

// Order represents one cleaning/laundry job. It is the aggregate root that
// owns the order lifecycle from publication through the multi-party handoff
// to completion.
//
// Order maintains these invariants:
//   - status transitions follow the lifecycle transition table only
//   - the price offer is mutable only before a cleaner is chosen
//   - chosenCleanerID is set exactly once, at the InProgress transition
//   - partnerID and courierID, once set, are never overwritten
//   - the tazaIndex evaluation is a snapshot taken at creation (or explicit
//     price change), never recomputed behind the caller's back
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	category        Category
	priceOffer      kernel.Price
	status          Status
	chosenCleanerID *kernel.UUID
	partnerID       *kernel.UUID
	courierID       *kernel.UUID
	tazaIndex       pricing.Evaluation
	createdAt       time.Time
	completedAt     *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in New status. The tazaIndex evaluation must
// be computed by the caller from the order's price and the category market
// average; the aggregate stores it as an immutable snapshot.
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	category Category,
	priceOffer kernel.Price,
	tazaIndex pricing.Evaluation,
) (*Order, error) {
	order := &Order{
		status:        New,
		tazaIndex:     tazaIndex,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setCategory(category),
		order.setPriceOffer(priceOffer),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence. It validates the
// stored status and the consistency between status and assigned role
// references, so corrupt rows fail fast instead of producing impossible
// aggregates.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	category Category,
	priceOffer kernel.Price,
	status Status,
	chosenCleanerID, partnerID, courierID *kernel.UUID,
	tazaIndex pricing.Evaluation,
	createdAt time.Time,
	completedAt *time.Time,
) (*Order, error) {
	order := &Order{
		chosenCleanerID: chosenCleanerID,
		partnerID:       partnerID,
		courierID:       courierID,
		tazaIndex:       tazaIndex,
		createdAt:       createdAt,
		completedAt:     completedAt,
		isConstructed:   true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setCategory(category),
		order.setPriceOffer(priceOffer),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := order.validateRoleReferences(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// ClientID returns the identifier of the client who published the order.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Category returns the service category of the order.
func (o *Order) Category() Category {
	return o.category
}

// PriceOffer returns the client-proposed price.
func (o *Order) PriceOffer() kernel.Price {
	return o.priceOffer
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChosenCleaner returns the accepted cleaner's ID, or nil before acceptance.
func (o *Order) ChosenCleaner() *kernel.UUID {
	return o.chosenCleanerID
}

// Partner returns the partner business handling the order, or nil for
// direct-flow orders.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// Courier returns the courier transporting the order, or nil before any
// courier leg is taken.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// TazaIndex returns the fairness evaluation snapshot attached at creation.
func (o *Order) TazaIndex() pricing.Evaluation {
	return o.tazaIndex
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// CompletedAt returns the completion timestamp, or nil while unfinished.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// IsPartnerFlow reports whether the order is routed through a partner
// business and therefore requires the courier handoff legs.
func (o *Order) IsPartnerFlow() bool {
	return o.partnerID != nil
}

// UpdatePriceOffer replaces the client's price offer and the tazaIndex
// snapshot derived from it. Allowed only before a cleaner is chosen.
func (o *Order) UpdatePriceOffer(priceOffer kernel.Price, tazaIndex pricing.Evaluation) error {
	if o.chosenCleanerID != nil {
		return ErrCleanerAlreadyChosen
	}
	if err := priceOffer.Validate(); err != nil {
		return err
	}

	o.priceOffer = priceOffer
	o.tazaIndex = tazaIndex
	return nil
}

// ReceiveOffers records the first bid arriving on the order, moving it from
// New to OffersReceived. The actor is the bidder's role (cleaner or partner).
// Subsequent bids leave the status untouched and must not call this.
func (o *Order) ReceiveOffers(actor Actor) error {
	newStatus, err := o.status.Apply(ActionReceiveOffers, actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AcceptOffer is the client choosing one specific offer. It sets the chosen
// cleaner exactly once and, for partner bids, pins the partner reference.
// A second accept on the same order fails: InProgress has no accept edge.
func (o *Order) AcceptOffer(cleanerID kernel.UUID, partnerID *kernel.UUID) error {
	if err := cleanerID.Validate(); err != nil {
		return err
	}
	if o.chosenCleanerID != nil {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), InProgress.String(), ErrCleanerAlreadyChosen)
	}

	newStatus, err := o.status.Apply(ActionAcceptOffer, ActorClient)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.chosenCleanerID = &cleanerID
	o.partnerID = partnerID
	return nil
}

// DispatchToPartner assigns a courier to the pickup leg and moves the order
// to CourierToPartner. Partner-flow orders only.
func (o *Order) DispatchToPartner(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if !o.IsPartnerFlow() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), CourierToPartner.String(), ErrOrderHasDirectFlow)
	}

	newStatus, err := o.status.Apply(ActionDispatchToPartner, ActorCourier)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.setCourierOnce(courierID)
	return nil
}

// ArriveAtPartner records the pickup leg as delivered to the partner
// facility.
func (o *Order) ArriveAtPartner() error {
	newStatus, err := o.status.Apply(ActionArriveAtPartner, ActorCourier)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// StartWork is the partner explicitly starting the job.
func (o *Order) StartWork() error {
	newStatus, err := o.status.Apply(ActionStartWork, ActorPartner)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// FinishWork is the partner finishing the job and uploading completion
// evidence; the order then awaits the return courier leg.
func (o *Order) FinishWork() error {
	newStatus, err := o.status.Apply(ActionFinishWork, ActorPartner)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// DispatchToClient assigns a courier to the return leg and moves the order
// to CourierToClient.
func (o *Order) DispatchToClient(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Apply(ActionDispatchToClient, ActorCourier)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.setCourierOnce(courierID)
	return nil
}

// DeliverToClient completes a partner-flow order when the return leg is
// delivered, stamping the completion timestamp.
func (o *Order) DeliverToClient() error {
	newStatus, err := o.status.Apply(ActionDeliverToClient, ActorCourier)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampCompleted()
	return nil
}

// ConfirmCompletion completes a direct-flow order on explicit client
// confirmation, stamping the completion timestamp. Partner-flow orders must
// finish through the courier return leg instead.
func (o *Order) ConfirmCompletion() error {
	if o.IsPartnerFlow() {
		return errs.NewInvalidTransitionErrorWithCause(
			o.status.String(), Completed.String(), ErrOrderHasPartnerFlow)
	}

	newStatus, err := o.status.Apply(ActionConfirmCompletion, ActorClient)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.stampCompleted()
	return nil
}

// Cancel aborts the order. Allowed for the client or the partner from any
// non-terminal status; no further transitions are permitted afterward.
func (o *Order) Cancel(actor Actor) error {
	newStatus, err := o.status.Apply(ActionCancel, actor)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// setCourierOnce pins the courier reference on first assignment; once set it
// is never overwritten, even when a different courier takes the return leg.
func (o *Order) setCourierOnce(courierID kernel.UUID) {
	if o.courierID == nil {
		o.courierID = &courierID
	}
}

func (o *Order) stampCompleted() {
	now := time.Now().UTC()
	o.completedAt = &now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("clientID", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	o.category = category
	return nil
}

func (o *Order) setPriceOffer(priceOffer kernel.Price) error {
	if err := priceOffer.Validate(); err != nil {
		return err
	}
	o.priceOffer = priceOffer
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// validateRoleReferences enforces consistency between the stored status and
// the role references assigned during the lifecycle.
func (o *Order) validateRoleReferences() error {
	cleanerRequired := o.status != New && o.status != OffersReceived && o.status != Cancelled
	if cleanerRequired && o.chosenCleanerID == nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("status %s requires a chosen cleaner", o.status))
	}
	if (o.status == New || o.status == OffersReceived) && o.chosenCleanerID != nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("status %s cannot have a chosen cleaner", o.status))
	}

	partnerLeg := o.status == CourierToPartner || o.status == AtPartner ||
		o.status == PartnerWorking || o.status == PartnerDone || o.status == CourierToClient
	if partnerLeg && o.partnerID == nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("status %s requires a partner", o.status))
	}
	if partnerLeg && o.courierID == nil {
		return errs.NewValueIsInvalidErrorWithCause("order",
			fmt.Errorf("status %s requires a courier", o.status))
	}

	return nil
}
