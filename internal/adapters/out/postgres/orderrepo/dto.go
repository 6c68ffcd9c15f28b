// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Statuses are stored as their wire strings rather than enum ordinals so the
// rows stay readable and the compare-and-set predicate survives enum renumbering.
type OrderDTO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status             string    `gorm:"type:text;index"`
	PaymentStatus      string    `gorm:"type:text"`
	DeliveryOption     string    `gorm:"type:text"`
	TotalCents         int64
	CreatedAt          time.Time
	ConfirmedAt        *time.Time
	ReadyAt            *time.Time `gorm:"index"`
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var reason *string
	if r := aggregate.CancellationReason(); r != "" {
		reason = &r
	}

	return OrderDTO{
		ID:                 aggregate.ID().Bytes(),
		Status:             aggregate.Status().String(),
		PaymentStatus:      aggregate.PaymentStatus().String(),
		DeliveryOption:     aggregate.DeliveryOption().String(),
		TotalCents:         aggregate.TotalCents(),
		CreatedAt:          aggregate.CreatedAt(),
		ConfirmedAt:        aggregate.ConfirmedAt(),
		ReadyAt:            aggregate.ReadyAt(),
		CompletedAt:        aggregate.CompletedAt(),
		CancelledAt:        aggregate.CancelledAt(),
		CancellationReason: reason,
	}
}

// toDomain converts a database DTO to an order domain aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	paymentStatus, err := order.PaymentStatusFromString(dto.PaymentStatus)
	if err != nil {
		return nil, err
	}
	option, err := order.DeliveryOptionFromString(dto.DeliveryOption)
	if err != nil {
		return nil, err
	}

	var reason string
	if dto.CancellationReason != nil {
		reason = *dto.CancellationReason
	}

	return order.RestoreOrder(
		id,
		status,
		paymentStatus,
		option,
		dto.TotalCents,
		dto.CreatedAt,
		dto.ConfirmedAt,
		dto.ReadyAt,
		dto.CompletedAt,
		dto.CancelledAt,
		reason,
	)
}
