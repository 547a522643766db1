package queries

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"
)

var ErrGetRestaurantsQueryIsNotConstructed = errors.New(
	"GetRestaurantsQuery must be created via NewGetRestaurantsQuery constructor",
)

// GetRestaurantsQuery retrieves all restaurants with their geocoding state.
type GetRestaurantsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRestaurantsQuery creates a query for the restaurant list.
func NewGetRestaurantsQuery() GetRestaurantsQuery {
	return GetRestaurantsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetRestaurantsQuery) Validate() error {
	return q.guard.Validate(ErrGetRestaurantsQueryIsNotConstructed)
}

// RestaurantResponse is one restaurant row. Latitude and Longitude are nil
// until the restaurant has been geocoded.
type RestaurantResponse struct {
	ID        kernel.UUID
	Name      string
	Address   string
	Latitude  *float64
	Longitude *float64
}
