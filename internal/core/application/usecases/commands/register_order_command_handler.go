package commands

import (
	"context"
	"log/slog"

	"starburger/internal/core/domain/model/kernel"
	"starburger/internal/core/domain/model/order"
	"starburger/internal/core/domain/model/product"
	"starburger/internal/core/ports"
)

// RegisterOrderCommandHandler handles the business logic for order registration.
// Resolves the requested products against the catalog, captures their current
// prices onto the order lines, and persists the order in NotProcessed status.
// Coordinates are not resolved here; that happens lazily on first dispatch.
type RegisterOrderCommandHandler struct {
	uowFactory UoWFactory
	publisher  ports.EventPublisher
	logger     *slog.Logger
}

// NewRegisterOrderCommandHandler creates a handler for order registration.
// The publisher may be nil when event publishing is disabled.
func NewRegisterOrderCommandHandler(
	uowFactory UoWFactory,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) RegisterOrderCommandHandler {
	return RegisterOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the order registration command.
// Every requested product must exist in the catalog; the price each line
// carries is the catalog price at this moment, so later price changes do
// not affect already registered orders.
func (h *RegisterOrderCommandHandler) Handle(ctx context.Context, cmd RegisterOrderCommand) error {
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

	items := cmd.Items()
	productIDs := make([]kernel.UUID, 0, len(items))
	for _, item := range items {
		productIDs = append(productIDs, item.ProductID)
	}

	products, err := uow.ProductRepository().GetByIDs(ctx, productIDs)
	if err != nil {
		return err
	}

	pricesByProduct := make(map[kernel.UUID]*product.Product, len(products))
	for _, p := range products {
		pricesByProduct[p.ID()] = p
	}

	lines := make([]order.Line, 0, len(items))
	for _, item := range items {
		line, err := order.NewLine(item.ProductID, item.Quantity, pricesByProduct[item.ProductID].Price())
		if err != nil {
			return err
		}
		lines = append(lines, line)
	}

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Firstname(),
		cmd.Lastname(),
		cmd.Phone(),
		cmd.Address(),
		cmd.Payment(),
		lines,
	)
	if err != nil {
		return err
	}
	aggregate.SetComment(cmd.Comment())

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishOrderChanged(ctx, h.publisher, h.logger, aggregate)
	return nil
}
