// Package kafka publishes customer-facing order status events to a broker.
// A separate notification service consumes the topic and fans out to email
// and push channels.
package kafka

import (
	"context"
	"encoding/json"
	"time"

	"bakery/internal/core/domain/model/order"

	kafkago "github.com/segmentio/kafka-go"
)

// statusEvent is the wire payload for one reached status.
type statusEvent struct {
	OrderID            string    `json:"order_id"`
	Event              string    `json:"event"`
	Status             string    `json:"status"`
	DeliveryOption     string    `json:"delivery_option"`
	TotalCents         int64     `json:"total_cents"`
	CancellationReason string    `json:"cancellation_reason,omitempty"`
	OccurredAt         time.Time `json:"occurred_at"`
}

// Notifier implements ports.Notifier on top of a Kafka topic.
type Notifier struct {
	writer *kafkago.Writer
}

// NewNotifier creates a notifier publishing to one topic. Messages are keyed
// by order ID so one order's events stay in partition order.
func NewNotifier(host string, topic string) *Notifier {
	return &Notifier{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(host),
			Topic:        topic,
			Balancer:     &kafkago.Hash{},
			BatchSize:    1,
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafkago.RequireAll,
		},
	}
}

// Notify publishes the event implied by the reached status.
func (n *Notifier) Notify(ctx context.Context, aggregate *order.Order, kind order.NotificationKind) error {
	event := statusEvent{
		OrderID:            aggregate.ID().String(),
		Event:              kind.String(),
		Status:             aggregate.Status().String(),
		DeliveryOption:     aggregate.DeliveryOption().String(),
		TotalCents:         aggregate.TotalCents(),
		CancellationReason: aggregate.CancellationReason(),
		OccurredAt:         time.Now().UTC(),
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return n.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
	})
}

// Close flushes and closes the underlying writer.
func (n *Notifier) Close() error {
	return n.writer.Close()
}
