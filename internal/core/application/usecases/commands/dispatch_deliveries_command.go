package commands

import (
	"errors"

	"taza/internal/pkg/guard"
)

var ErrDispatchDeliveriesCommandIsNotConstructed = errors.New(
	"DispatchDeliveriesCommand must be created via NewDispatchDeliveriesCommand constructor",
)

// DispatchDeliveriesCommand triggers a scan for partner-flow orders that
// need a courier leg. It carries no parameters; the handler derives all work
// from the current order and delivery state.
type DispatchDeliveriesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewDispatchDeliveriesCommand creates a dispatch scan command.
func NewDispatchDeliveriesCommand() (DispatchDeliveriesCommand, error) {
	return DispatchDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c DispatchDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrDispatchDeliveriesCommandIsNotConstructed)
}
