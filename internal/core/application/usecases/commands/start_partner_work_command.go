package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrStartPartnerWorkCommandIsNotConstructed = errors.New(
	"StartPartnerWorkCommand must be created via NewStartPartnerWorkCommand constructor",
)

// StartPartnerWorkCommand represents the partner explicitly starting the job
// on items that arrived at the facility.
type StartPartnerWorkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartPartnerWorkCommand creates a command to start partner work.
func NewStartPartnerWorkCommand(orderID kernel.UUID) (StartPartnerWorkCommand, error) {
	cmd := StartPartnerWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return StartPartnerWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPartnerWorkCommand) Validate() error {
	return c.guard.Validate(ErrStartPartnerWorkCommandIsNotConstructed)
}

// OrderID returns the order being worked on.
func (c StartPartnerWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *StartPartnerWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
