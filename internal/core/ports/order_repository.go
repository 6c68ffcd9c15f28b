package ports

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Status writes go through CompareAndSetStatus exclusively, so that no two
// concurrent transition attempts can both succeed from the same starting
// status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// CompareAndSetStatus persists the aggregate's current state only if
	// the stored status still equals expectedFrom. Returns false, without
	// error, when the guard fails because another transition won the race.
	CompareAndSetStatus(ctx context.Context, aggregate *order.Order, expectedFrom order.Status) (bool, error)

	// GetReadyBefore retrieves orders in ready status whose ready_at is at
	// or before the cutoff. Feeds the auto-complete timeout rule.
	GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// GetUnpaidPendingBefore retrieves pending orders without settled
	// payment created at or before the cutoff. Feeds the auto-cancel rule.
	GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
