package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrFinishPartnerWorkCommandIsNotConstructed = errors.New(
	"FinishPartnerWorkCommand must be created via NewFinishPartnerWorkCommand constructor",
)

// FinishPartnerWorkCommand represents the partner finishing the job; the
// order then waits for the return courier leg.
type FinishPartnerWorkCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewFinishPartnerWorkCommand creates a command to finish partner work.
func NewFinishPartnerWorkCommand(orderID kernel.UUID) (FinishPartnerWorkCommand, error) {
	cmd := FinishPartnerWorkCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderID(orderID); err != nil {
		return FinishPartnerWorkCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishPartnerWorkCommand) Validate() error {
	return c.guard.Validate(ErrFinishPartnerWorkCommandIsNotConstructed)
}

// OrderID returns the order whose work is finished.
func (c FinishPartnerWorkCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *FinishPartnerWorkCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
