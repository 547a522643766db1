package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"starburger/internal/core/domain/services"
	"starburger/internal/core/ports"
)

// ErrRestaurantCannotPrepareOrder is returned when an operator tries to
// assign an order to a restaurant whose menu does not cover every product
// of the order.
var ErrRestaurantCannotPrepareOrder = errors.New(
	"restaurant does not have all order products available",
)

// AssignRestaurantCommandHandler handles the hand-off of an order to a
// restaurant. The assignment is re-checked against the current menu: even
// if the dispatch board suggested this restaurant a moment ago, its
// availability may have changed since.
type AssignRestaurantCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAssignRestaurantCommandHandler creates a handler for restaurant assignment.
func NewAssignRestaurantCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AssignRestaurantCommandHandler {
	return AssignRestaurantCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the assignment command.
// The order must be in NotProcessed status, the restaurant must exist, and
// every product of the order must be available at that restaurant. On
// success the order moves to Cooking and records the call time.
func (h *AssignRestaurantCommandHandler) Handle(ctx context.Context, cmd AssignRestaurantCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.RestaurantRepository().Get(ctx, cmd.RestaurantID()); err != nil {
		return err
	}

	menuItems, err := uow.MenuRepository().GetByRestaurant(ctx, cmd.RestaurantID())
	if err != nil {
		return err
	}

	index := services.NewAvailabilityIndex(menuItems)
	if !index.CanPrepare(cmd.RestaurantID(), aggregate.ProductIDs()) {
		return ErrRestaurantCannotPrepareOrder
	}

	if err = aggregate.AssignRestaurant(cmd.RestaurantID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, h.logger, aggregate)
	return nil
}
