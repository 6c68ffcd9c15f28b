package ports

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// Notifier dispatches the customer-facing event implied by a reached
// status. From the executor's perspective it is best effort: a delivery
// failure is logged, never rolled back into the transition.
type Notifier interface {
	Notify(ctx context.Context, aggregate *order.Order, kind order.NotificationKind) error
}
