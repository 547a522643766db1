// Package kafka publishes order lifecycle events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"

	"starburger/internal/core/ports"
	"starburger/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// OrderChangedPublisher writes OrderChangedEvent messages. The order ID is
// used as the message key so all events of one order land on the same
// partition and stay ordered.
type OrderChangedPublisher struct {
	writer *kafka.Writer
}

// NewOrderChangedPublisher creates a publisher for the given broker and topic.
func NewOrderChangedPublisher(broker string, topic string) (*OrderChangedPublisher, error) {
	if broker == "" {
		return nil, errs.NewValueIsRequiredError("broker")
	}
	if topic == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	return &OrderChangedPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}, nil
}

// Publish sends one event as JSON.
func (p *OrderChangedPublisher) Publish(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close flushes pending messages and releases the underlying writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
