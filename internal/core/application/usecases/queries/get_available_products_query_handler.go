package queries

import (
	"context"

	"starburger/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetAvailableProductsQueryHandler reads the product catalog straight from
// the database, keeping only products some restaurant can prepare.
type GetAvailableProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableProductsQueryHandler creates a handler for catalog queries.
func NewGetAvailableProductsQueryHandler(db *gorm.DB) GetAvailableProductsQueryHandler {
	return GetAvailableProductsQueryHandler{db: db}
}

// Handle executes the query. Products are sorted by name, then by ID.
func (h GetAvailableProductsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableProductsQuery,
) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			p.id,
			p.name,
			p.category,
			p.description,
			p.price,
			p.special
		FROM products p
		JOIN menu_items m ON m.product_id = p.id AND m.available
		ORDER BY p.name, p.id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]ProductResponse, 0)
	for rows.Next() {
		var raw uuid.UUID
		var name, category, description string
		var price decimal.Decimal
		var special bool

		if err = rows.Scan(&raw, &name, &category, &description, &price, &special); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}

		products = append(products, ProductResponse{
			ID:          id,
			Name:        name,
			Category:    category,
			Description: description,
			Price:       price,
			Special:     special,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
