package ports

import (
	"context"
	"errors"

	"starburger/internal/core/domain/model/kernel"
)

// Geocoding failure classes. Callers branch on these to decide whether an
// address is permanently unresolvable or the provider is merely unreachable.
var (
	// ErrAddressNotFound means the provider answered and knows no such
	// address. The order stays workable; it simply has no coordinates.
	ErrAddressNotFound = errors.New("address not found")

	// ErrGeocodingUnavailable means the provider could not be consulted:
	// transport failure, timeout, or a non-success response. The address
	// may still resolve on a later attempt.
	ErrGeocodingUnavailable = errors.New("geocoding unavailable")
)

// Geocoder resolves a free-form postal address to geographic coordinates.
type Geocoder interface {
	// Geocode resolves address to a point. Returns ErrAddressNotFound
	// when the provider recognizes the request but finds no match, and
	// ErrGeocodingUnavailable when the provider cannot be reached or
	// responds abnormally.
	Geocode(ctx context.Context, address string) (kernel.GeoPoint, error)
}
