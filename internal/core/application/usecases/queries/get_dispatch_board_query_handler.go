package queries

import (
	"context"
	"errors"
	"log/slog"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"
	"starburger/internal/core/domain/model/restaurant"
	"starburger/internal/core/domain/services"
	"starburger/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// DefaultBoardWorkers bounds how many orders are evaluated concurrently
// when no explicit limit is configured.
const DefaultBoardWorkers = 8

// CoordinateResolver resolves one order's delivery address to coordinates.
// The dispatch board uses it for unassigned orders; implementations
// memoize so repeated board refreshes do not repeat provider calls.
type CoordinateResolver interface {
	ResolveOrderCoordinates(ctx context.Context, orderID kernel.UUID) (kernel.GeoPoint, error)
}

// GetDispatchBoardQueryHandler assembles the dispatch board.
//
// Orders, restaurants and the menu are each loaded once per evaluation, so
// every row is ranked against the same snapshot. Orders are then evaluated
// concurrently under a worker limit, and strictly independently: one
// order's failed address resolution marks only that row, never the board.
type GetDispatchBoardQueryHandler struct {
	orderRepo      ports.OrderRepository
	restaurantRepo ports.RestaurantRepository
	menuRepo       ports.MenuRepository
	resolver       CoordinateResolver
	ranker         services.DistanceRanker
	workers        int
	logger         *slog.Logger
}

// NewGetDispatchBoardQueryHandler creates a handler for dispatch board queries.
// A non-positive workers value falls back to DefaultBoardWorkers.
func NewGetDispatchBoardQueryHandler(
	orderRepo ports.OrderRepository,
	restaurantRepo ports.RestaurantRepository,
	menuRepo ports.MenuRepository,
	resolver CoordinateResolver,
	workers int,
	logger *slog.Logger,
) GetDispatchBoardQueryHandler {
	if workers <= 0 {
		workers = DefaultBoardWorkers
	}

	return GetDispatchBoardQueryHandler{
		orderRepo:      orderRepo,
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		resolver:       resolver,
		ranker:         services.NewDistanceRanker(),
		workers:        workers,
		logger:         logger,
	}
}

// Handle builds the board. Rows keep the order of GetAllUncompleted
// regardless of which worker finished first.
func (h GetDispatchBoardQueryHandler) Handle(
	ctx context.Context,
	query GetDispatchBoardQuery,
) ([]DispatchBoardRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllUncompleted(ctx)
	if err != nil {
		return nil, err
	}

	restaurants, err := h.restaurantRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	menuItems, err := h.menuRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	index := services.NewAvailabilityIndex(menuItems)
	restaurantsByID := make(map[kernel.UUID]*restaurant.Restaurant, len(restaurants))
	for _, r := range restaurants {
		restaurantsByID[r.ID()] = r
	}

	rows := make([]DispatchBoardRow, len(orders))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(h.workers)

	for i, aggregate := range orders {
		group.Go(func() error {
			rows[i] = h.buildRow(groupCtx, aggregate, index, restaurantsByID)
			return nil
		})
	}

	if err = group.Wait(); err != nil {
		return nil, err
	}

	return rows, nil
}

func (h GetDispatchBoardQueryHandler) buildRow(
	ctx context.Context,
	aggregate *order.Order,
	index *services.AvailabilityIndex,
	restaurantsByID map[kernel.UUID]*restaurant.Restaurant,
) DispatchBoardRow {
	row := DispatchBoardRow{
		OrderID:   aggregate.ID(),
		Customer:  aggregate.Firstname() + " " + aggregate.Lastname(),
		Phone:     aggregate.Phone(),
		Address:   aggregate.Address(),
		Status:    aggregate.Status().String(),
		TotalCost: aggregate.TotalCost(),
	}

	// Orders already handed to a restaurant need no suggestions.
	if aggregate.Status() != order.NotProcessed {
		return row
	}

	origin, err := h.resolver.ResolveOrderCoordinates(ctx, aggregate.ID())
	if err != nil {
		switch {
		case errors.Is(err, ports.ErrAddressNotFound):
			row.Failure = ResolutionFailureAddressNotFound
		default:
			h.logger.Warn("failed to resolve order coordinates",
				"orderId", aggregate.ID().String(),
				"error", err)
			row.Failure = ResolutionFailureGeocodingUnavailable
		}
		return row
	}

	capable := index.CapableRestaurants(aggregate.ProductIDs())
	candidates := make([]*restaurant.Restaurant, 0, len(capable))
	for _, restaurantID := range capable {
		if r, ok := restaurantsByID[restaurantID]; ok {
			candidates = append(candidates, r)
		}
	}

	ranking, err := h.ranker.Rank(origin, candidates)
	if err != nil {
		h.logger.Warn("failed to rank candidate restaurants",
			"orderId", aggregate.ID().String(),
			"error", err)
		return row
	}

	row.Candidates = make([]DispatchBoardCandidate, 0, len(ranking.Candidates))
	for _, candidate := range ranking.Candidates {
		row.Candidates = append(row.Candidates, DispatchBoardCandidate{
			RestaurantID: candidate.RestaurantID,
			Name:         candidate.Name,
			DistanceKm:   candidate.DistanceKm,
		})
	}
	row.ExcludedRestaurants = ranking.Excluded

	return row
}
