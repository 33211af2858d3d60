package commands

import (
	"errors"

	"pickuphub/internal/core/domain/model/kernel"
	"pickuphub/internal/pkg/guard"
)

var ErrConfirmPickupCommandIsNotConstructed = errors.New(
	"ConfirmPickupCommand must be created via NewConfirmPickupCommand constructor",
)

// ConfirmPickupCommand represents the confirmation that a recipient
// collected an order at the counter.
type ConfirmPickupCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   string

	guard guard.ConstructorGuard
}

// NewConfirmPickupCommand creates a command to confirm pickup of an order.
func NewConfirmPickupCommand(orderID kernel.UUID, actor string) (ConfirmPickupCommand, error) {
	cmd := ConfirmPickupCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
	); err != nil {
		return ConfirmPickupCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmPickupCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickupCommandIsNotConstructed)
}

// OrderID returns the order being collected.
func (c ConfirmPickupCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Actor returns the identity attributed to the confirmation.
func (c ConfirmPickupCommand) Actor() string {
	return c.actor
}

func (c *ConfirmPickupCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ConfirmPickupCommand) setActor(actor string) error {
	if actor == "" {
		return ErrActorIsRequired
	}
	c.actor = actor
	return nil
}
