package queries

import (
	"context"

	"starburger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailabilityMatrixQueryHandler reads the availability matrix straight
// from the menu table.
type GetAvailabilityMatrixQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailabilityMatrixQueryHandler creates a handler for availability queries.
func NewGetAvailabilityMatrixQueryHandler(db *gorm.DB) GetAvailabilityMatrixQueryHandler {
	return GetAvailabilityMatrixQueryHandler{db: db}
}

// Handle executes the query. Restaurants are sorted by name and products
// by ID, so the matrix renders identically between refreshes.
func (h GetAvailabilityMatrixQueryHandler) Handle(
	ctx context.Context,
	query GetAvailabilityMatrixQuery,
) ([]RestaurantAvailabilityResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			m.restaurant_id,
			r.name,
			m.product_id
		FROM menu_items m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.available
		ORDER BY r.name, m.restaurant_id, m.product_id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matrix := make([]RestaurantAvailabilityResponse, 0)
	for rows.Next() {
		var restaurantRaw, productRaw uuid.UUID
		var name string

		if err = rows.Scan(&restaurantRaw, &name, &productRaw); err != nil {
			return nil, err
		}

		restaurantID, idErr := kernel.UUIDFromBytes(restaurantRaw[:])
		if idErr != nil {
			return nil, idErr
		}
		productID, idErr := kernel.UUIDFromBytes(productRaw[:])
		if idErr != nil {
			return nil, idErr
		}

		if len(matrix) == 0 || !matrix[len(matrix)-1].RestaurantID.IsEqual(restaurantID) {
			matrix = append(matrix, RestaurantAvailabilityResponse{
				RestaurantID:   restaurantID,
				RestaurantName: name,
			})
		}

		last := &matrix[len(matrix)-1]
		last.AvailableProducts = append(last.AvailableProducts, productID)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return matrix, nil
}
