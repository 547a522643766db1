package commands

import (
	"context"
	"time"

	"starburger/internal/core/domain/model/restaurant"
	"starburger/internal/core/ports"
)

// GeocodeRestaurantCommandHandler resolves a restaurant's address into
// coordinates. Unlike order coordinates, restaurant coordinates may be
// re-resolved: a restaurant that moved gets fresh coordinates the next
// time the job picks it up after its address changes.
type GeocodeRestaurantCommandHandler struct {
	uowFactory RestaurantUoWFactory
	geocoder   ports.Geocoder
	timeout    time.Duration
}

// NewGeocodeRestaurantCommandHandler creates a handler for restaurant
// geocoding. A non-positive timeout falls back to DefaultGeocodeTimeout.
func NewGeocodeRestaurantCommandHandler(
	uowFactory RestaurantUoWFactory,
	geocoder ports.Geocoder,
	timeout time.Duration,
) GeocodeRestaurantCommandHandler {
	if timeout <= 0 {
		timeout = DefaultGeocodeTimeout
	}

	return GeocodeRestaurantCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		timeout:    timeout,
	}
}

// Handle geocodes the restaurant's address and stores the coordinates.
// Returns restaurant.ErrAddressIsRequired when the restaurant has no
// address to resolve. A restaurant that already has coordinates is left
// untouched.
func (h *GeocodeRestaurantCommandHandler) Handle(ctx context.Context, cmd GeocodeRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	restaurantRepo := uow.RestaurantRepository()
	aggregate, err := restaurantRepo.Get(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	if aggregate.Address() == "" {
		return restaurant.ErrAddressIsRequired
	}

	if aggregate.HasCoordinates() {
		return uow.Commit(ctx)
	}

	geocodeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	point, err := h.geocoder.Geocode(geocodeCtx, aggregate.Address())
	if err != nil {
		return err
	}

	if err = aggregate.SetCoordinates(point); err != nil {
		return err
	}

	if err = restaurantRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
