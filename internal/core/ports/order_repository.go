// Package ports defines repository and gateway interfaces for the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying order entities
// based on their status and coordinate resolution state.
type OrderRepository interface {
	// Add persists a new order aggregate and its lines to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns the complete order with its lines, status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUncompleted retrieves every order that has not reached the
	// Completed status, ordered by registration time. This is the working
	// set shown on the dispatch board.
	GetAllUncompleted(ctx context.Context) ([]*order.Order, error)

	// UpdateCoordinates writes the resolved delivery coordinates for an
	// order, but only if the order has no coordinates yet. Returns true
	// when this call performed the write, false when another writer got
	// there first. Once set, coordinates are never overwritten.
	//
	// Example:
	//   won, err := repo.UpdateCoordinates(ctx, orderID, point)
	//   if err != nil {
	//       return err
	//   }
	//   if !won {
	//       // re-read the order to pick up the winning coordinates
	//   }
	UpdateCoordinates(ctx context.Context, id kernel.UUID, point kernel.GeoPoint) (bool, error)
}
