package queries

import (
	"context"

	"starburger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetRestaurantsQueryHandler reads the restaurant list straight from the
// database.
type GetRestaurantsQueryHandler struct {
	db *gorm.DB
}

// NewGetRestaurantsQueryHandler creates a handler for restaurant list queries.
func NewGetRestaurantsQueryHandler(db *gorm.DB) GetRestaurantsQueryHandler {
	return GetRestaurantsQueryHandler{db: db}
}

// Handle executes the query. Restaurants are sorted by name, then by ID.
func (h GetRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query GetRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			address,
			latitude,
			longitude
		FROM restaurants
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var raw uuid.UUID
		var name, address string
		var latitude, longitude *float64

		if err = rows.Scan(&raw, &name, &address, &latitude, &longitude); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}

		restaurants = append(restaurants, RestaurantResponse{
			ID:        id,
			Name:      name,
			Address:   address,
			Latitude:  latitude,
			Longitude: longitude,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
