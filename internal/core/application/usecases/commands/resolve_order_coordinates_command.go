package commands

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

var ErrResolveOrderCoordinatesCommandIsNotConstructed = errors.New(
	"ResolveOrderCoordinatesCommand must be created via NewResolveOrderCoordinatesCommand constructor",
)

// ResolveOrderCoordinatesCommand requests geocoding of one order's delivery
// address into coordinates. Resolution is idempotent: an order whose
// coordinates are already known never triggers another provider call.
type ResolveOrderCoordinatesCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewResolveOrderCoordinatesCommand creates a command to resolve the
// coordinates of the given order.
func NewResolveOrderCoordinatesCommand(orderID kernel.UUID) (ResolveOrderCoordinatesCommand, error) {
	command := ResolveOrderCoordinatesCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return ResolveOrderCoordinatesCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ResolveOrderCoordinatesCommand) Validate() error {
	return c.guard.Validate(ErrResolveOrderCoordinatesCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to resolve.
func (c ResolveOrderCoordinatesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *ResolveOrderCoordinatesCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
