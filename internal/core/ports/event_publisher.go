package ports

import (
	"context"
	"time"
)

// OrderChangedEvent notifies downstream consumers that an order was created
// or moved through its lifecycle. Carried over the message broker as JSON.
type OrderChangedEvent struct {
	OrderID    string    `json:"order_id"`
	Status     string    `json:"status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher publishes order lifecycle events to the message broker.
// Publishing is best effort: command handlers log failures and keep going,
// so a broker outage never blocks order processing.
type EventPublisher interface {
	// Publish sends one event. The event key is the order identifier so
	// per-order ordering is preserved across partitions.
	Publish(ctx context.Context, event OrderChangedEvent) error
}
