// Package queries contains read-only operations in the CQRS architecture.
// Query handlers either read the database directly, bypassing the domain
// model for speed, or compose domain services when the answer needs
// domain logic (the dispatch board).
package queries

import (
	"errors"
	"time"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetUncompletedOrdersQueryIsNotConstructed = errors.New(
	"GetUncompletedOrdersQuery must be created via NewGetUncompletedOrdersQuery constructor",
)

// GetUncompletedOrdersQuery retrieves all orders still in progress.
// Returns orders in NotProcessed, Cooking or Delivering status for
// monitoring and management.
type GetUncompletedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUncompletedOrdersQuery creates a query to retrieve orders in progress.
func NewGetUncompletedOrdersQuery() GetUncompletedOrdersQuery {
	return GetUncompletedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetUncompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetUncompletedOrdersQueryIsNotConstructed)
}

// GetUncompletedOrdersQueryResponse is one in-progress order.
// TotalCost is computed from the order lines at read time.
type GetUncompletedOrdersQueryResponse struct {
	ID           kernel.UUID
	Firstname    string
	Lastname     string
	Phone        string
	Address      string
	Status       string
	RegisteredAt time.Time
	TotalCost    decimal.Decimal
}
