package menurepo

import (
	"context"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormMenuRepository implements MenuRepository using GORM.
// Menu rows are not aggregates; there is no tracking and no identity
// beyond the (restaurant, product) pair.
type GormMenuRepository struct {
	db *gorm.DB
}

// NewGormMenuRepository creates a new GORM menu repository.
func NewGormMenuRepository(db *gorm.DB) *GormMenuRepository {
	return &GormMenuRepository{db: db}
}

// GetAll retrieves the complete availability snapshot.
func (r *GormMenuRepository) GetAll(ctx context.Context) ([]menu.MenuItem, error) {
	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).Order("restaurant_id, product_id").Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetByRestaurant retrieves the availability rows of one restaurant.
func (r *GormMenuRepository) GetByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]menu.MenuItem, error) {
	if err := restaurantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []MenuItemDTO
	err := r.db.WithContext(ctx).
		Where("restaurant_id = ?", restaurantID.Bytes()).
		Order("product_id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// Upsert writes one availability row, inserting or updating in place.
func (r *GormMenuRepository) Upsert(ctx context.Context, item menu.MenuItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "restaurant_id"}, {Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"available"}),
		}).
		Create(&dto).Error
}

func toDomainAll(dtos []MenuItemDTO) ([]menu.MenuItem, error) {
	items := make([]menu.MenuItem, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
