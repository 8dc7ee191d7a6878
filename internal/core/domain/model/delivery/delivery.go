package delivery

import (
	"errors"
	"fmt"
	"time"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")

	// ErrCourierAlreadyAssigned is returned when a second courier tries to
	// accept a delivery that is already taken.
	ErrCourierAlreadyAssigned = errors.New("delivery already has an assigned courier")
)

// Kind distinguishes the two legs of a partner order: items travel from the
// client to the partner's facility, and back after the work is done.
type Kind int

const (
	// KindUnknown represents an invalid or undefined delivery kind.
	KindUnknown Kind = iota

	// ToPartner is the pickup leg from the client to the partner facility.
	ToPartner

	// ToClient is the return leg from the partner facility to the client.
	ToClient
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown: "unknown",
		ToPartner:   "to_partner",
		ToClient:    "to_client",
	}
}

// Validate checks the kind is one of the defined values.
func (k Kind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery kind",
			fmt.Errorf("%d is not a valid delivery kind", int(k)))
	}
	return nil
}

// String returns the wire name of the kind.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "unknown"
}

// KindFromString parses the stored representation of a kind.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getKindStrings() {
		if str == s && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("delivery kind",
		fmt.Errorf("%q is not a valid delivery kind", s))
}

// Status is the courier-side lifecycle of a single delivery leg. It moves
// strictly forward: New, Accepted, PickedUp, InTransit, Delivered. Cancelled
// is reachable from any non-terminal status.
type Status int

const (
	// StatusUnknown represents an invalid or undefined delivery status.
	StatusUnknown Status = iota

	// StatusNew means the leg is created and waiting for a courier.
	StatusNew

	// StatusAccepted means a courier took the leg but has not collected the
	// items yet.
	StatusAccepted

	// StatusPickedUp means the courier holds the items.
	StatusPickedUp

	// StatusInTransit means the courier is moving toward the destination.
	StatusInTransit

	// StatusDelivered means the items reached the destination.
	StatusDelivered

	// StatusCancelled means the leg was abandoned because the order was
	// cancelled.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusNew:       "new",
		StatusAccepted:  "accepted",
		StatusPickedUp:  "picked_up",
		StatusInTransit: "in_transit",
		StatusDelivered: "delivered",
		StatusCancelled: "cancelled",
	}
}

// Validate checks the status is one of the defined values.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("delivery status",
			fmt.Errorf("%d is not a valid delivery status", int(s)))
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
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("delivery status",
		fmt.Errorf("%q is not a valid delivery status", s))
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Delivery is one courier leg of a partner order. A partner order has at
// most two legs alive over its lifetime, never both at once: the pickup leg
// ends before the work starts, the return leg is created when the work is
// done.
type Delivery struct {
	id        kernel.UUID
	orderID   kernel.UUID
	kind      Kind
	courierID *kernel.UUID
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates an unassigned leg for the given order.
func NewDelivery(id kernel.UUID, orderID kernel.UUID, kind Kind) (*Delivery, error) {
	d := &Delivery{
		status:        StatusNew,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setKind(kind),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDelivery reconstructs a Delivery from persistence.
func RestoreDelivery(
	id kernel.UUID,
	orderID kernel.UUID,
	kind Kind,
	courierID *kernel.UUID,
	status Status,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		courierID:     courierID,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setOrderID(orderID),
		d.setKind(kind),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	if status != StatusNew && status != StatusCancelled && courierID == nil {
		return nil, errs.NewValueIsRequiredError("courierID")
	}

	return d, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// OrderID returns the order this leg belongs to.
func (d *Delivery) OrderID() kernel.UUID {
	return d.orderID
}

// Kind returns the leg direction.
func (d *Delivery) Kind() Kind {
	return d.kind
}

// CourierID returns the assigned courier, or nil while the leg waits.
func (d *Delivery) CourierID() *kernel.UUID {
	return d.courierID
}

// Status returns the leg status.
func (d *Delivery) Status() Status {
	return d.status
}

// CreatedAt returns the leg creation timestamp.
func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

// Accept assigns a courier to the leg. The courier is pinned: once set it
// never changes, and a second Accept fails.
func (d *Delivery) Accept(courierID kernel.UUID) error {
	if d.courierID != nil {
		return ErrCourierAlreadyAssigned
	}
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courierID", err)
	}
	if err := d.advance(StatusNew, StatusAccepted); err != nil {
		return err
	}
	d.courierID = &courierID
	return nil
}

// PickUp records that the courier collected the items.
func (d *Delivery) PickUp() error {
	return d.advance(StatusAccepted, StatusPickedUp)
}

// StartTransit records that the courier is en route to the destination.
func (d *Delivery) StartTransit() error {
	return d.advance(StatusPickedUp, StatusInTransit)
}

// MarkDelivered closes the leg at its destination.
func (d *Delivery) MarkDelivered() error {
	return d.advance(StatusInTransit, StatusDelivered)
}

// Cancel abandons the leg. Delivered legs cannot be cancelled.
func (d *Delivery) Cancel() error {
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionError(d.status.String(), StatusCancelled.String())
	}
	d.status = StatusCancelled
	return nil
}

func (d *Delivery) advance(from, to Status) error {
	if d.status != from {
		return errs.NewInvalidTransitionError(d.status.String(), to.String())
	}
	d.status = to
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("orderID", err)
	}
	d.orderID = orderID
	return nil
}

func (d *Delivery) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	d.kind = kind
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
