package queries

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetAvailableProductsQueryIsNotConstructed = errors.New(
	"GetAvailableProductsQuery must be created via NewGetAvailableProductsQuery constructor",
)

// GetAvailableProductsQuery retrieves products offered by at least one
// restaurant. Backs the public product catalog.
type GetAvailableProductsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableProductsQuery creates a query for the product catalog.
func NewGetAvailableProductsQuery() GetAvailableProductsQuery {
	return GetAvailableProductsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableProductsQueryIsNotConstructed)
}

// ProductResponse is one catalog entry.
type ProductResponse struct {
	ID          kernel.UUID
	Name        string
	Category    string
	Description string
	Price       decimal.Decimal
	Special     bool
}
