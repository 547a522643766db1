// Package restaurant contains the Restaurant aggregate: a kitchen that can
// prepare products and be ranked by distance from a delivery address.
// Coordinates are optional until the restaurant is geocoded or set by an
// operator; a restaurant without coordinates cannot participate in
// distance ranking.
package restaurant

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/errs"
	"starburger/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when creating a restaurant without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrAddressIsRequired is returned when geocoding is requested for a
	// restaurant that has no address on file.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
	// ErrRestaurantIsNotConstructed is returned when using an improperly initialized Restaurant.
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
)

// Restaurant represents a kitchen location. Its menu is modeled separately
// as menu items relating it to products; the aggregate itself carries
// identity, contact details and the optional geographic position.
type Restaurant struct {
	id           kernel.UUID
	name         string
	address      string
	contactPhone string
	coordinates  *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewRestaurant creates a Restaurant with the required identity and name.
// Address, contact phone and coordinates are optional and set through
// their mutators.
func NewRestaurant(id kernel.UUID, name string) (*Restaurant, error) {
	restaurant := &Restaurant{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		restaurant.setID(id),
		restaurant.setName(name),
	); err != nil {
		return nil, err
	}

	return restaurant, nil
}

// RestoreRestaurant reconstructs a Restaurant from persistence.
func RestoreRestaurant(
	id kernel.UUID,
	name string,
	address string,
	contactPhone string,
	coordinates *kernel.GeoPoint,
) (*Restaurant, error) {
	restaurant, err := NewRestaurant(id, name)
	if err != nil {
		return nil, err
	}

	if coordinates != nil {
		if err = coordinates.Validate(); err != nil {
			return nil, err
		}
	}

	restaurant.address = address
	restaurant.contactPhone = contactPhone
	restaurant.coordinates = coordinates
	return restaurant, nil
}

// Validate ensures the Restaurant was created through a constructor.
func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

// IsEqual compares restaurants by identity.
func (r *Restaurant) IsEqual(other *Restaurant) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the restaurant identity.
func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

// Name returns the restaurant name.
func (r *Restaurant) Name() string {
	return r.name
}

// Address returns the street address, empty when not set.
func (r *Restaurant) Address() string {
	return r.address
}

// ContactPhone returns the contact phone, empty when not set.
func (r *Restaurant) ContactPhone() string {
	return r.contactPhone
}

// Coordinates returns the geographic position, nil when the restaurant has
// never been geocoded.
func (r *Restaurant) Coordinates() *kernel.GeoPoint {
	return r.coordinates
}

// HasCoordinates reports whether the restaurant can participate in
// distance ranking.
func (r *Restaurant) HasCoordinates() bool {
	return r.coordinates != nil
}

// SetAddress sets the street address. Changing the address drops any
// previously resolved coordinates; the geocoding job will pick the
// restaurant up again.
func (r *Restaurant) SetAddress(address string) {
	if address != r.address {
		r.coordinates = nil
	}
	r.address = address
}

// SetContactPhone sets the contact phone.
func (r *Restaurant) SetContactPhone(contactPhone string) {
	r.contactPhone = contactPhone
}

// SetCoordinates sets or replaces the geographic position. Unlike an
// order's resolved coordinates, a restaurant's position may legitimately
// change (re-geocoding, manual correction).
func (r *Restaurant) SetCoordinates(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	r.coordinates = &point
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	r.name = name
	return nil
}
