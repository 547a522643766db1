package commands

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

var ErrAssignRestaurantCommandIsNotConstructed = errors.New(
	"AssignRestaurantCommand must be created via NewAssignRestaurantCommand constructor",
)

// AssignRestaurantCommand represents an operator's decision to hand an
// order to a specific restaurant. The ranking produced by the dispatch
// board is advisory; this command is the only way an assignment happens.
type AssignRestaurantCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignRestaurantCommand creates a command to assign an order to a restaurant.
func NewAssignRestaurantCommand(orderID, restaurantID kernel.UUID) (AssignRestaurantCommand, error) {
	command := AssignRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRestaurantID(restaurantID),
	); err != nil {
		return AssignRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAssignRestaurantCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being assigned.
func (c AssignRestaurantCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RestaurantID returns the identifier of the chosen restaurant.
func (c AssignRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *AssignRestaurantCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
