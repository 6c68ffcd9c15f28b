package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a storefront order's lifecycle. It holds
// the subset of order attributes the state machine reads and the executor
// writes; pricing, line items, and customer data live outside this module.
//
// Invariants:
//   - Must have a valid unique identifier and delivery option
//   - status only moves through Transition, after external validation
//   - Lifecycle timestamps are stamped exactly once and never cleared
//   - cancellationReason is present exactly when status is Cancelled
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// status is the current lifecycle state
	status Status

	// paymentStatus is the payment collaborator's external signal
	paymentStatus PaymentStatus

	// deliveryOption selects the pickup or delivery status sequence
	deliveryOption DeliveryOption

	// totalCents is the immutable order total, referenced only for
	// notification content
	totalCents int64

	createdAt   time.Time
	confirmedAt *time.Time
	readyAt     *time.Time
	completedAt *time.Time
	cancelledAt *time.Time

	// cancellationReason is set on the transition into Cancelled
	cancellationReason string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a freshly placed order in Pending status with payment
// still pending. All parameters are validated; createdAt must be non-zero.
func NewOrder(id kernel.UUID, option DeliveryOption, totalCents int64, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        Pending,
		paymentStatus: PaymentPending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryOption(option),
		o.setTotalCents(totalCents),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and payment status, plus whichever lifecycle
// timestamps were already stamped.
func RestoreOrder(
	id kernel.UUID,
	status Status,
	paymentStatus PaymentStatus,
	option DeliveryOption,
	totalCents int64,
	createdAt time.Time,
	confirmedAt, readyAt, completedAt, cancelledAt *time.Time,
	cancellationReason string,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setDeliveryOption(option),
		o.setTotalCents(totalCents),
		o.setCreatedAt(createdAt),
		status.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.paymentStatus = paymentStatus
	o.confirmedAt = confirmedAt
	o.readyAt = readyAt
	o.completedAt = completedAt
	o.cancelledAt = cancelledAt
	o.cancellationReason = cancellationReason

	return o, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentStatus returns the payment collaborator's signal.
func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// DeliveryOption returns the sequence variant for this order.
func (o *Order) DeliveryOption() DeliveryOption {
	return o.deliveryOption
}

// TotalCents returns the order total in cents.
func (o *Order) TotalCents() int64 {
	return o.totalCents
}

// CreatedAt returns the order placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ConfirmedAt returns when the order was confirmed, if it was.
func (o *Order) ConfirmedAt() *time.Time {
	return o.confirmedAt
}

// ReadyAt returns when the order became ready, if it did.
func (o *Order) ReadyAt() *time.Time {
	return o.readyAt
}

// CompletedAt returns when the order reached its terminal fulfilled state
// (completed or delivered), if it did.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// CancelledAt returns when the order was cancelled, if it was.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// CancellationReason returns the reason recorded on cancellation,
// or "" for non-cancelled orders.
func (o *Order) CancellationReason() string {
	return o.cancellationReason
}

// Transition records a status change that has already been validated by the
// state machine. It sets the new status, stamps the timestamp implied by the
// reached state exactly once, and stores the cancellation reason when
// cancelling. It enforces only structural rules; callers must run
// services.OrderStateMachine.ValidateTransition first.
func (o *Order) Transition(to Status, reason string, now time.Time) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if now.IsZero() {
		return errs.NewValueIsRequiredError("transition time")
	}

	//nolint:exhaustive // statuses without an implied timestamp fall through
	switch to {
	case Confirmed:
		o.stampOnce(&o.confirmedAt, now)
	case Ready:
		o.stampOnce(&o.readyAt, now)
	case Delivered, Completed:
		o.stampOnce(&o.completedAt, now)
	case Cancelled:
		if strings.TrimSpace(reason) == "" {
			return errs.NewValueIsRequiredError("cancellation reason")
		}
		o.stampOnce(&o.cancelledAt, now)
		o.cancellationReason = reason
	}

	o.status = to
	return nil
}

// stampOnce sets a lifecycle timestamp only if it has never been set.
// Timestamps are never backdated or cleared.
func (o *Order) stampOnce(field **time.Time, now time.Time) {
	if *field == nil {
		t := now
		*field = &t
	}
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDeliveryOption(option DeliveryOption) error {
	if err := option.Validate(); err != nil {
		return err
	}
	o.deliveryOption = option
	return nil
}

func (o *Order) setTotalCents(totalCents int64) error {
	if totalCents < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"total is invalid",
			fmt.Errorf("%d is negative", totalCents),
		)
	}
	o.totalCents = totalCents
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
