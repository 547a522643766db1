package ports

import (
	"context"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"
)

// MenuRepository defines the persistence contract for menu availability rows.
type MenuRepository interface {
	// GetAll retrieves the complete availability snapshot. The dispatch
	// board builds its capability index from a single snapshot so every
	// order in one evaluation sees the same menu state.
	GetAll(ctx context.Context) ([]menu.MenuItem, error)

	// Upsert writes the availability of one product at one restaurant,
	// inserting the row if it does not exist.
	Upsert(ctx context.Context, item menu.MenuItem) error

	// GetByRestaurant retrieves the availability rows of one restaurant.
	GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]menu.MenuItem, error)
}
