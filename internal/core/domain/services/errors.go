package services

import (
	"errors"
	"fmt"

	"bakery/internal/core/domain/model/order"
)

// Sentinel errors for classifying transition rejections via errors.Is.
var (
	ErrInvalidTransition = errors.New("invalid transition")
	ErrPaymentRequired   = errors.New("payment required")
	ErrReasonRequired    = errors.New("cancellation reason required")
	ErrOrderNotReady     = errors.New("order not ready")
)

// InvalidTransitionError reports a transition blocked by the role/sequence
// gate. Backwards distinguishes a non-privileged role trying to move an
// order to an earlier position in its sequence, so callers can surface it
// differently from a plain forbidden move.
type InvalidTransitionError struct {
	Role      order.Role
	From      order.Status
	To        order.Status
	Backwards bool
}

// NewInvalidTransitionError creates an InvalidTransitionError for the given actor and statuses.
func NewInvalidTransitionError(role order.Role, from, to order.Status, backwards bool) *InvalidTransitionError {
	return &InvalidTransitionError{Role: role, From: from, To: to, Backwards: backwards}
}

func (e *InvalidTransitionError) Error() string {
	if e.Backwards {
		return fmt.Sprintf("%s cannot transition backwards from %s to %s", e.Role, e.From, e.To)
	}
	return fmt.Sprintf("%s cannot transition from %s to %s", e.Role, e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error {
	return ErrInvalidTransition
}

// PaymentRequiredError reports an attempted confirmation of an order whose
// payment has not settled.
type PaymentRequiredError struct {
	PaymentStatus order.PaymentStatus
}

// NewPaymentRequiredError creates a PaymentRequiredError carrying the current payment signal.
func NewPaymentRequiredError(paymentStatus order.PaymentStatus) *PaymentRequiredError {
	return &PaymentRequiredError{PaymentStatus: paymentStatus}
}

func (e *PaymentRequiredError) Error() string {
	return fmt.Sprintf("Payment must be completed before the order can be confirmed (payment status: %s)", e.PaymentStatus)
}

func (e *PaymentRequiredError) Unwrap() error {
	return ErrPaymentRequired
}

// ReasonRequiredError reports an attempted cancellation without a reason.
type ReasonRequiredError struct{}

// NewReasonRequiredError creates a ReasonRequiredError.
func NewReasonRequiredError() *ReasonRequiredError {
	return &ReasonRequiredError{}
}

func (e *ReasonRequiredError) Error() string {
	return "a cancellation reason is required"
}

func (e *ReasonRequiredError) Unwrap() error {
	return ErrReasonRequired
}

// OrderNotReadyError reports an attempted completion of an order that never
// went through the ready state.
type OrderNotReadyError struct {
	From order.Status
}

// NewOrderNotReadyError creates an OrderNotReadyError for the current status.
func NewOrderNotReadyError(from order.Status) *OrderNotReadyError {
	return &OrderNotReadyError{From: from}
}

func (e *OrderNotReadyError) Error() string {
	return fmt.Sprintf("order must be marked as ready before completion (status: %s)", e.From)
}

func (e *OrderNotReadyError) Unwrap() error {
	return ErrOrderNotReady
}
