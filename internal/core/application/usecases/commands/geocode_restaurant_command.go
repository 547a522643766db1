package commands

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

var ErrGeocodeRestaurantCommandIsNotConstructed = errors.New(
	"GeocodeRestaurantCommand must be created via NewGeocodeRestaurantCommand constructor",
)

// GeocodeRestaurantCommand requests geocoding of one restaurant's address.
// Used by the background geocoding job for restaurants whose coordinates
// are not known yet.
type GeocodeRestaurantCommand struct { //nolint:recvcheck //using for validation
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGeocodeRestaurantCommand creates a command to geocode the given restaurant.
func NewGeocodeRestaurantCommand(restaurantID kernel.UUID) (GeocodeRestaurantCommand, error) {
	command := GeocodeRestaurantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setRestaurantID(restaurantID); err != nil {
		return GeocodeRestaurantCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GeocodeRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrGeocodeRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the identifier of the restaurant to geocode.
func (c GeocodeRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c *GeocodeRestaurantCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}

	c.restaurantID = restaurantID
	return nil
}
