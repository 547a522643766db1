package commands

import (
	"context"
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/ports"
)

// DefaultGeocodeTimeout bounds a single provider call when no explicit
// timeout is configured.
const DefaultGeocodeTimeout = 3 * time.Second

// ResolveOrderCoordinatesCommandHandler resolves delivery addresses into
// coordinates exactly once per order.
//
// The stored coordinates act as a memo: if they are present, they are
// returned without consulting the provider. Otherwise the provider is
// called under a timeout and the result is written conditionally, so when
// two resolutions race only the first writer's coordinates stick. The
// loser re-reads and returns the winning point, which keeps every caller's
// view of an order consistent.
type ResolveOrderCoordinatesCommandHandler struct {
	uowFactory OrderUoWFactory
	geocoder   ports.Geocoder
	timeout    time.Duration
}

// NewResolveOrderCoordinatesCommandHandler creates a handler for coordinate
// resolution. A non-positive timeout falls back to DefaultGeocodeTimeout.
func NewResolveOrderCoordinatesCommandHandler(
	uowFactory OrderUoWFactory,
	geocoder ports.Geocoder,
	timeout time.Duration,
) ResolveOrderCoordinatesCommandHandler {
	if timeout <= 0 {
		timeout = DefaultGeocodeTimeout
	}

	return ResolveOrderCoordinatesCommandHandler{
		uowFactory: uowFactory,
		geocoder:   geocoder,
		timeout:    timeout,
	}
}

// Handle resolves the order's coordinates and returns them.
// Returns ports.ErrAddressNotFound or ports.ErrGeocodingUnavailable
// unchanged when the provider cannot produce a point; the order itself is
// left untouched in that case and resolution may be retried later.
func (h *ResolveOrderCoordinatesCommandHandler) Handle(
	ctx context.Context,
	cmd ResolveOrderCoordinatesCommand,
) (kernel.GeoPoint, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.GeoPoint{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.GeoPoint{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	if point := aggregate.Coordinates(); point != nil {
		if err = uow.Commit(ctx); err != nil {
			return kernel.GeoPoint{}, err
		}
		return *point, nil
	}

	geocodeCtx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	point, err := h.geocoder.Geocode(geocodeCtx, aggregate.Address())
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	won, err := orderRepo.UpdateCoordinates(ctx, cmd.OrderID(), point)
	if err != nil {
		return kernel.GeoPoint{}, err
	}

	if !won {
		// Lost the race: another resolution wrote first. Their
		// coordinates are authoritative.
		aggregate, err = orderRepo.Get(ctx, cmd.OrderID())
		if err != nil {
			return kernel.GeoPoint{}, err
		}
		point = *aggregate.Coordinates()
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.GeoPoint{}, err
	}

	return point, nil
}
