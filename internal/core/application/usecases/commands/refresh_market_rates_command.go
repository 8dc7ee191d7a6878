package commands

import (
	"errors"

	"taza/internal/pkg/guard"
)

var ErrRefreshMarketRatesCommandIsNotConstructed = errors.New(
	"RefreshMarketRatesCommand must be created via NewRefreshMarketRatesCommand constructor",
)

// RefreshMarketRatesCommand triggers a recomputation of the per-category
// market-average prices from completed orders. It carries no parameters.
type RefreshMarketRatesCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

// NewRefreshMarketRatesCommand creates a market rate refresh command.
func NewRefreshMarketRatesCommand() (RefreshMarketRatesCommand, error) {
	return RefreshMarketRatesCommand{
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RefreshMarketRatesCommand) Validate() error {
	return c.guard.Validate(ErrRefreshMarketRatesCommandIsNotConstructed)
}
