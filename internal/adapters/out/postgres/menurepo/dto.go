// Package menurepo provides persistence for per-restaurant menu availability.
package menurepo

import (
	"starburger/internal/adapters/out/postgres/productrepo"
	"starburger/internal/adapters/out/postgres/restaurantrepo"
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/menu"

	"github.com/google/uuid"
)

// MenuItemDTO represents one availability row: whether a restaurant can
// currently prepare a product. Absence of a row means unavailable. Deleting
// either side of the pair deletes the row with it.
type MenuItemDTO struct {
	RestaurantID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Available    bool

	Restaurant restaurantrepo.RestaurantDTO `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Product    productrepo.ProductDTO       `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for menu rows.
func (MenuItemDTO) TableName() string {
	return "menu_items"
}

func fromDomain(item menu.MenuItem) MenuItemDTO {
	return MenuItemDTO{
		RestaurantID: item.RestaurantID().Bytes(),
		ProductID:    item.ProductID().Bytes(),
		Available:    item.Available(),
	}
}

func toDomain(dto MenuItemDTO) (menu.MenuItem, error) {
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return menu.MenuItem{}, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return menu.MenuItem{}, err
	}

	return menu.NewMenuItem(restaurantID, productID, dto.Available)
}
