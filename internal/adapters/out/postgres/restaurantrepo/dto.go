// Package restaurantrepo provides persistence for restaurant aggregates.
package restaurantrepo

import (
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"

	"github.com/google/uuid"
)

// RestaurantDTO represents the database structure for restaurants.
// Coordinates follow the same nullable-pair convention as orders.
type RestaurantDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Address      string
	ContactPhone string
	Latitude     *float64 `gorm:"type:decimal(9,6)"`
	Longitude    *float64 `gorm:"type:decimal(9,6)"`
}

// TableName specifies the database table name for restaurants.
func (RestaurantDTO) TableName() string {
	return "restaurants"
}

func fromDomain(aggregate *restaurant.Restaurant) RestaurantDTO {
	var latitude, longitude *float64
	if point := aggregate.Coordinates(); point != nil {
		lat, lon := point.Latitude(), point.Longitude()
		latitude, longitude = &lat, &lon
	}

	return RestaurantDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Address:      aggregate.Address(),
		ContactPhone: aggregate.ContactPhone(),
		Latitude:     latitude,
		Longitude:    longitude,
	}
}

func toDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var coordinates *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		coordinates = &point
	}

	return restaurant.RestoreRestaurant(id, dto.Name, dto.Address, dto.ContactPhone, coordinates)
}
