package commands

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
	"taza/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to publish a new order on the
// marketplace with a client-proposed price.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, clientID, order.Cleaning, price)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, rates)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	clientID   kernel.UUID
	category   order.Category
	priceOffer kernel.Price

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to publish a new order.
// Validates identifiers, category, and price. Returns an error if any
// validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	category order.Category,
	priceOffer kernel.Price,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setCategory(category),
		cmd.setPriceOffer(priceOffer),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the publishing client's identifier.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Category returns the service category.
func (c CreateOrderCommand) Category() order.Category {
	return c.category
}

// PriceOffer returns the client-proposed price.
func (c CreateOrderCommand) PriceOffer() kernel.Price {
	return c.priceOffer
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setCategory(category order.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}

func (c *CreateOrderCommand) setPriceOffer(priceOffer kernel.Price) error {
	if err := priceOffer.Validate(); err != nil {
		return err
	}

	c.priceOffer = priceOffer
	return nil
}
