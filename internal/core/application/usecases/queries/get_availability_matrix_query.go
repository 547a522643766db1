package queries

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

var ErrGetAvailabilityMatrixQueryIsNotConstructed = errors.New(
	"GetAvailabilityMatrixQuery must be created via NewGetAvailabilityMatrixQuery constructor",
)

// GetAvailabilityMatrixQuery retrieves which products each restaurant can
// currently prepare. Backs the operator's availability overview.
type GetAvailabilityMatrixQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailabilityMatrixQuery creates a query for the availability overview.
func NewGetAvailabilityMatrixQuery() GetAvailabilityMatrixQuery {
	return GetAvailabilityMatrixQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailabilityMatrixQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailabilityMatrixQueryIsNotConstructed)
}

// RestaurantAvailabilityResponse lists the products one restaurant has
// available. Restaurants with nothing available do not appear.
type RestaurantAvailabilityResponse struct {
	RestaurantID      kernel.UUID
	RestaurantName    string
	AvailableProducts []kernel.UUID
}
