package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"starburger/internal/core/domain/model/order"
	"starburger/internal/core/ports"
)

// ErrOrderCannotBeAdvanced is returned when an order is not in a status
// this command can move forward.
var ErrOrderCannotBeAdvanced = errors.New(
	"order cannot be advanced from its current status",
)

// AdvanceOrderCommandHandler moves orders through the delivery pipeline.
// Which transition applies is derived from the order's current status, so
// operators never have to name the target status explicitly.
type AdvanceOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewAdvanceOrderCommandHandler creates a handler for order advancement.
func NewAdvanceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle advances the order one lifecycle step. An order in Cooking starts
// delivery; an order in Delivering completes and records the delivery
// time. Any other status is an error.
func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) error {
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

	switch aggregate.Status() {
	case order.Cooking:
		err = aggregate.StartDelivery()
	case order.Delivering:
		err = aggregate.Complete(time.Now().UTC())
	default:
		err = ErrOrderCannotBeAdvanced
	}
	if err != nil {
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
