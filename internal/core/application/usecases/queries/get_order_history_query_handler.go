package queries

import (
	"context"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderHistoryQueryHandler reads the audit trail straight from the
// database. The read path bypasses the repository on purpose: history is
// append-only, so there is no aggregate state to rebuild.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle returns the order's audit entries, oldest first.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	entries := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			previous_status,
			new_status,
			actor_role,
			reason,
			auto,
			auto_reason,
			occurred_at
		FROM order_status_history
		WHERE order_id = ?
		ORDER BY occurred_at, id
	`, query.OrderID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var previousStatus, newStatus, actorRole string
		var reason, autoReason string
		var auto bool
		var occurredAt time.Time

		err = rows.Scan(
			&id,
			&previousStatus,
			&newStatus,
			&actorRole,
			&reason,
			&auto,
			&autoReason,
			&occurredAt,
		)
		if err != nil {
			return nil, err
		}

		entry, convErr := toHistoryResponse(
			id, previousStatus, newStatus, actorRole, reason, auto, autoReason, occurredAt)
		if convErr != nil {
			return nil, convErr
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func toHistoryResponse(
	id uuid.UUID,
	previousStatus, newStatus, actorRole string,
	reason string,
	auto bool,
	autoReason string,
	occurredAt time.Time,
) (GetOrderHistoryQueryResponse, error) {
	entryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	previous, err := order.StatusFromString(previousStatus)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}
	reached, err := order.StatusFromString(newStatus)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}
	role, err := order.RoleFromString(actorRole)
	if err != nil {
		return GetOrderHistoryQueryResponse{}, err
	}

	return GetOrderHistoryQueryResponse{
		ID:             entryID,
		PreviousStatus: previous,
		NewStatus:      reached,
		ActorRole:      role,
		Reason:         reason,
		Auto:           auto,
		AutoReason:     autoReason,
		OccurredAt:     occurredAt,
	}, nil
}
