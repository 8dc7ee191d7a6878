package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrStartDeliveryTransitCommandIsNotConstructed = errors.New(
	"StartDeliveryTransitCommand must be created via NewStartDeliveryTransitCommand constructor",
)

// StartDeliveryTransitCommand represents the courier heading to the leg's
// destination with the items on board.
type StartDeliveryTransitCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryTransitCommand creates a command to record transit start.
func NewStartDeliveryTransitCommand(deliveryID kernel.UUID) (StartDeliveryTransitCommand, error) {
	cmd := StartDeliveryTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setDeliveryID(deliveryID); err != nil {
		return StartDeliveryTransitCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartDeliveryTransitCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryTransitCommandIsNotConstructed)
}

// DeliveryID returns the leg entering transit.
func (c StartDeliveryTransitCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c *StartDeliveryTransitCommand) setDeliveryID(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}

	c.deliveryID = deliveryID
	return nil
}
