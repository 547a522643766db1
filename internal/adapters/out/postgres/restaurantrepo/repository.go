package restaurantrepo

import (
	"context"
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/restaurant"
	"starburger/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRestaurantRepository implements RestaurantRepository using GORM.
type GormRestaurantRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRestaurantRepository creates a new GORM restaurant repository.
func NewGormRestaurantRepository(db *gorm.DB, tracker aggregateTracker) *GormRestaurantRepository {
	return &GormRestaurantRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new restaurant to the database.
func (r *GormRestaurantRepository) Add(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing restaurant to the database.
func (r *GormRestaurantRepository) Update(ctx context.Context, aggregate *restaurant.Restaurant) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RestaurantDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"name":          dto.Name,
			"address":       dto.Address,
			"contact_phone": dto.ContactPhone,
			"latitude":      dto.Latitude,
			"longitude":     dto.Longitude,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a restaurant by ID.
func (r *GormRestaurantRepository) Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RestaurantDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("restaurant", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every restaurant, ordered by name.
func (r *GormRestaurantRepository) GetAll(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	if err := r.db.WithContext(ctx).Order("name, id").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetAllWithoutCoordinates retrieves restaurants awaiting geocoding: an
// address is present but no coordinates are stored.
func (r *GormRestaurantRepository) GetAllWithoutCoordinates(ctx context.Context) ([]*restaurant.Restaurant, error) {
	var dtos []RestaurantDTO
	err := r.db.WithContext(ctx).
		Where("address != '' AND latitude IS NULL").
		Order("name, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func toDomainAll(dtos []RestaurantDTO) ([]*restaurant.Restaurant, error) {
	restaurants := make([]*restaurant.Restaurant, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, aggregate)
	}
	return restaurants, nil
}
