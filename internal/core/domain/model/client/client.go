package client

import (
	"errors"

	"taza/internal/core/domain/model/kernel"
	"taza/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient or RestoreClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// CompletionPoints is the loyalty reward for a completed order.
const CompletionPoints = 50

// Client is the ordering side of the marketplace. It accumulates loyalty
// points as its orders complete.
type Client struct {
	id            kernel.UUID
	name          string
	loyaltyPoints int

	isConstructed bool
}

// NewClient creates a Client with zero loyalty points.
func NewClient(id kernel.UUID, name string) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient reconstructs a Client from persistence.
func RestoreClient(id kernel.UUID, name string, loyaltyPoints int) (*Client, error) {
	c, err := NewClient(id, name)
	if err != nil {
		return nil, err
	}

	if loyaltyPoints < 0 {
		return nil, errs.NewValueIsOutOfRangeError("loyaltyPoints", loyaltyPoints, 0, nil)
	}
	c.loyaltyPoints = loyaltyPoints

	return c, nil
}

// Validate ensures the Client instance was properly constructed.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the client's display name.
func (c *Client) Name() string {
	return c.name
}

// LoyaltyPoints returns the accumulated loyalty balance.
func (c *Client) LoyaltyPoints() int {
	return c.loyaltyPoints
}

// AwardPoints adds points to the loyalty balance. The amount must be
// positive.
func (c *Client) AwardPoints(points int) error {
	if points <= 0 {
		return errs.NewValueIsOutOfRangeError("points", points, 1, nil)
	}
	c.loyaltyPoints += points
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
