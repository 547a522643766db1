// Package productrepo provides persistence for the product catalog.
package productrepo

import (
	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/product"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog products.
type ProductDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string
	Category    string          `gorm:"index"`
	Description string
	Price       decimal.Decimal `gorm:"type:decimal(12,2)"`
	Special     bool
}

// TableName specifies the database table name for products.
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Category:    aggregate.Category(),
		Description: aggregate.Description(),
		Price:       aggregate.Price(),
		Special:     aggregate.Special(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Category, dto.Description, dto.Price, dto.Special)
}
