package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/guard"
)

var ErrUpdateOrderPriceCommandIsNotConstructed = errors.New(
	"UpdateOrderPriceCommand must be created via NewUpdateOrderPriceCommand constructor",
)

// UpdateOrderPriceCommand represents the client changing the proposed price
// on an order that has no chosen cleaner yet. The fairness snapshot is
// recomputed from the new price.
type UpdateOrderPriceCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	priceOffer kernel.Price

	guard guard.ConstructorGuard
}

// NewUpdateOrderPriceCommand creates a command to change an order's price.
func NewUpdateOrderPriceCommand(
	orderID kernel.UUID, priceOffer kernel.Price,
) (UpdateOrderPriceCommand, error) {
	cmd := UpdateOrderPriceCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPriceOffer(priceOffer),
	); err != nil {
		return UpdateOrderPriceCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderPriceCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderPriceCommandIsNotConstructed)
}

// OrderID returns the order to reprice.
func (c UpdateOrderPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// PriceOffer returns the new proposed price.
func (c UpdateOrderPriceCommand) PriceOffer() kernel.Price {
	return c.priceOffer
}

func (c *UpdateOrderPriceCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateOrderPriceCommand) setPriceOffer(priceOffer kernel.Price) error {
	if err := priceOffer.Validate(); err != nil {
		return err
	}

	c.priceOffer = priceOffer
	return nil
}
