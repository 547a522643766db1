package ports

import (
	"context"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"
)

// RestaurantRepository defines the persistence contract for restaurant aggregates.
type RestaurantRepository interface {
	// Add persists a new restaurant aggregate to storage.
	Add(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Update persists changes to an existing restaurant aggregate.
	Update(ctx context.Context, aggregate *restaurant.Restaurant) error

	// Get retrieves a restaurant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)

	// GetAll retrieves every restaurant, ordered by name.
	GetAll(ctx context.Context) ([]*restaurant.Restaurant, error)

	// GetAllWithoutCoordinates retrieves restaurants that have an address
	// but no resolved coordinates yet. The geocoding job works through
	// this set.
	GetAllWithoutCoordinates(ctx context.Context) ([]*restaurant.Restaurant, error)
}
