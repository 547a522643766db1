package queries

import (
	"errors"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetDispatchBoardQueryIsNotConstructed = errors.New(
	"GetDispatchBoardQuery must be created via NewGetDispatchBoardQuery constructor",
)

// GetDispatchBoardQuery builds the operator's dispatch board: every
// uncompleted order, and for each unassigned order the capable restaurants
// ranked by distance from the delivery address.
//
// Example:
//
//	query := NewGetDispatchBoardQuery()
//	board, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to build dispatch board: %w", err)
//	}
//	for _, row := range board {
//	    fmt.Printf("%s: %d candidates\n", row.OrderID, len(row.Candidates))
//	}
type GetDispatchBoardQuery struct {
	guard guard.ConstructorGuard
}

// NewGetDispatchBoardQuery creates a query to build the dispatch board.
func NewGetDispatchBoardQuery() GetDispatchBoardQuery {
	return GetDispatchBoardQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetDispatchBoardQuery) Validate() error {
	return q.guard.Validate(ErrGetDispatchBoardQueryIsNotConstructed)
}

// ResolutionFailure classifies why an order has no candidate ranking.
type ResolutionFailure string

const (
	// ResolutionFailureNone means ranking succeeded (or was not needed).
	ResolutionFailureNone ResolutionFailure = ""

	// ResolutionFailureAddressNotFound means the geocoding provider knows
	// no such delivery address. A fixed address will resolve next time.
	ResolutionFailureAddressNotFound ResolutionFailure = "address_not_found"

	// ResolutionFailureGeocodingUnavailable means the provider was
	// unreachable or timed out; the board row may recover on refresh.
	ResolutionFailureGeocodingUnavailable ResolutionFailure = "geocoding_unavailable"
)

// DispatchBoardCandidate is one ranked suggestion for an order.
type DispatchBoardCandidate struct {
	RestaurantID kernel.UUID
	Name         string
	DistanceKm   float64
}

// DispatchBoardRow is one order on the dispatch board. Orders past
// NotProcessed carry no candidates; they appear for progress tracking only.
type DispatchBoardRow struct {
	OrderID   kernel.UUID
	Customer  string
	Phone     string
	Address   string
	Status    string
	TotalCost decimal.Decimal

	// Failure explains an empty Candidates list for an unassigned order.
	Failure ResolutionFailure

	Candidates []DispatchBoardCandidate

	// ExcludedRestaurants counts capable restaurants that could not be
	// ranked because their own coordinates are unknown.
	ExcludedRestaurants int
}
