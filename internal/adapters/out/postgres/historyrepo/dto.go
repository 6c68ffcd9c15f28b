// Package historyrepo persists the append-only order status audit trail.
package historyrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents one audit row. Rows are only ever inserted.
type HistoryEntryDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	PreviousStatus string    `gorm:"type:text"`
	NewStatus      string    `gorm:"type:text"`
	ActorRole      string    `gorm:"type:text"`
	Reason         string
	Auto           bool
	AutoReason     string
	OccurredAt     time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit entries.
func (HistoryEntryDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(entry *order.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:             entry.ID().Bytes(),
		OrderID:        entry.OrderID().Bytes(),
		PreviousStatus: entry.PreviousStatus().String(),
		NewStatus:      entry.NewStatus().String(),
		ActorRole:      entry.ActorRole().String(),
		Reason:         entry.Reason(),
		Auto:           entry.Auto(),
		AutoReason:     entry.AutoReason(),
		OccurredAt:     entry.OccurredAt(),
	}
}

func toDomain(dto HistoryEntryDTO) (*order.HistoryEntry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	previousStatus, err := order.StatusFromString(dto.PreviousStatus)
	if err != nil {
		return nil, err
	}
	newStatus, err := order.StatusFromString(dto.NewStatus)
	if err != nil {
		return nil, err
	}
	actorRole, err := order.RoleFromString(dto.ActorRole)
	if err != nil {
		return nil, err
	}

	return order.RestoreHistoryEntry(
		id,
		orderID,
		previousStatus,
		newStatus,
		actorRole,
		dto.Reason,
		dto.Auto,
		dto.AutoReason,
		dto.OccurredAt,
	)
}
