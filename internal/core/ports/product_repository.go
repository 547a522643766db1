package ports

import (
	"context"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	// Add persists a new product to storage.
	Add(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetByIDs retrieves the products with the given identifiers. Returns
	// errs.ErrObjectNotFound if any of the identifiers is unknown, so
	// order registration never silently drops a line.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)

	// GetAll retrieves every product, ordered by name.
	GetAll(ctx context.Context) ([]*product.Product, error)
}
