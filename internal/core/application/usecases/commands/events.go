package commands

import (
	"context"
	"log/slog"
	"time"

	"starburger/internal/core/domain/model/order"
	"starburger/internal/core/ports"
)

// publishOrderChanged sends an order lifecycle notification. Publishing is
// best effort: a broker failure is logged and swallowed, since by the time
// an event is emitted the transaction has already committed.
func publishOrderChanged(
	ctx context.Context,
	publisher ports.EventPublisher,
	logger *slog.Logger,
	aggregate *order.Order,
) {
	if publisher == nil {
		return
	}

	event := ports.OrderChangedEvent{
		OrderID:    aggregate.ID().String(),
		Status:     aggregate.Status().String(),
		OccurredAt: time.Now().UTC(),
	}

	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("failed to publish order changed event",
			"orderId", event.OrderID,
			"status", event.Status,
			"error", err)
	}
}
