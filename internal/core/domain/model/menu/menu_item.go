// Package menu contains the MenuItem relation: the sole source of truth
// for whether a restaurant can currently prepare a product. At most one
// item exists per (restaurant, product) pair; a missing item means the
// product is unavailable at that restaurant.
package menu

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when using an improperly
// initialized MenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem relates one restaurant to one product with an availability
// flag. It is an immutable snapshot record; toggling availability replaces
// the item.
type MenuItem struct {
	restaurantID kernel.UUID
	productID    kernel.UUID
	available    bool

	guard guard.ConstructorGuard
}

// NewMenuItem creates a MenuItem for the given (restaurant, product) pair.
func NewMenuItem(restaurantID kernel.UUID, productID kernel.UUID, available bool) (MenuItem, error) {
	if err := errors.Join(restaurantID.Validate(), productID.Validate()); err != nil {
		return MenuItem{}, err
	}

	return MenuItem{
		restaurantID: restaurantID,
		productID:    productID,
		available:    available,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the MenuItem was created through NewMenuItem.
func (m MenuItem) Validate() error {
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

// RestaurantID returns the restaurant side of the relation.
func (m MenuItem) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// ProductID returns the product side of the relation.
func (m MenuItem) ProductID() kernel.UUID {
	return m.productID
}

// Available reports whether the restaurant can currently prepare the
// product.
func (m MenuItem) Available() bool {
	return m.available
}
