package ports

import (
	"context"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
)

// HistoryRepository persists the append-only transition audit trail.
// Entries are never updated or deleted.
type HistoryRepository interface {
	// Append stores one audit entry for a successful transition.
	Append(ctx context.Context, entry *order.HistoryEntry) error

	// ListByOrder retrieves an order's audit trail, oldest first.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error)
}
