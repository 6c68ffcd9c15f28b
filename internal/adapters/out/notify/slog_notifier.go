// Package notify provides a log-only notifier for environments without a
// message broker, such as local development and tests.
package notify

import (
	"context"
	"log/slog"

	"bakery/internal/core/domain/model/order"
)

// SlogNotifier implements ports.Notifier by writing structured log lines.
type SlogNotifier struct {
	logger *slog.Logger
}

// NewSlogNotifier creates a log-only notifier.
func NewSlogNotifier(logger *slog.Logger) *SlogNotifier {
	return &SlogNotifier{logger: logger.With("component", "notifier")}
}

// Notify records the event instead of dispatching it.
func (n *SlogNotifier) Notify(ctx context.Context, aggregate *order.Order, kind order.NotificationKind) error {
	n.logger.InfoContext(ctx, "Order status notification",
		"order_id", aggregate.ID().String(),
		"event", kind.String(),
		"status", aggregate.Status().String(),
	)
	return nil
}
