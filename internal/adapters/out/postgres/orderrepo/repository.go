package orderrepo

import (
	"context"
	"errors"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CompareAndSetStatus persists the aggregate only if the stored status still
// equals expectedFrom. The status predicate in the WHERE clause is what makes
// two concurrent transitions from the same status resolve to exactly one
// winner: the loser matches zero rows and gets false back.
//
// Only the columns a transition owns are written. payment_status belongs to
// the payment collaborator and is never included, so a payment update landing
// between the caller's read and this write survives.
func (r *GormOrderRepository) CompareAndSetStatus(
	ctx context.Context,
	aggregate *order.Order,
	expectedFrom order.Status,
) (bool, error) {
	if err := aggregate.Validate(); err != nil {
		return false, err
	}
	if err := expectedFrom.Validate(); err != nil {
		return false, err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expectedFrom.String()).
		Updates(map[string]any{
			"status":              dto.Status,
			"confirmed_at":        dto.ConfirmedAt,
			"ready_at":            dto.ReadyAt,
			"completed_at":        dto.CompletedAt,
			"cancelled_at":        dto.CancelledAt,
			"cancellation_reason": dto.CancellationReason,
		})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

// GetReadyBefore retrieves orders that have been sitting in ready status
// since at or before the cutoff.
func (r *GormOrderRepository) GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND ready_at <= ?", order.Ready.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

// GetUnpaidPendingBefore retrieves pending orders without settled payment
// placed at or before the cutoff.
func (r *GormOrderRepository) GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status = ? AND payment_status <> ? AND created_at <= ?",
			order.Pending.String(), order.PaymentPaid.String(), cutoff).Error
	if err != nil {
		return nil, err
	}

	return toDomainSlice(dtos)
}

func toDomainSlice(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
