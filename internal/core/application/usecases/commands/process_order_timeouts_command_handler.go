package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/ports"
)

// Timeout rules applied by the scheduled runner.
const (
	// ReadyOrderTimeout is how long an order may sit in ready before it is
	// assumed collected and auto-completed.
	ReadyOrderTimeout = 24 * time.Hour

	// UnpaidPendingTimeout is how long a pending order may wait for
	// payment before it is auto-cancelled.
	UnpaidPendingTimeout = 30 * time.Minute

	// AutoCompleteMetadataReason marks rule A history entries.
	AutoCompleteMetadataReason = "24_hour_timeout"

	// AutoCancelMetadataReason marks rule B history entries.
	AutoCancelMetadataReason = "payment_timeout"

	// PaymentTimeoutCancellationReason is the customer-facing reason
	// recorded on rule B cancellations.
	PaymentTimeoutCancellationReason = "Payment not completed within 30 minutes"
)

// OrderFailure records one order that could not be transitioned during a
// timeout sweep.
type OrderFailure struct {
	OrderID string
	Err     error
}

// ProcessOrderTimeoutsSummary reports one sweep's outcome for
// observability: which orders were auto-completed, which were
// auto-cancelled, and which failed.
type ProcessOrderTimeoutsSummary struct {
	AutoCompleted []string
	AutoCancelled []string
	Failures      []OrderFailure
}

// ProcessOrderTimeoutsCommandHandler is the scheduled transition runner.
// Each candidate order is processed independently as the system role; one
// order's failure (validation, conflict) never blocks the rest of the
// batch. Candidate-query failures are joined into the returned error.
type ProcessOrderTimeoutsCommandHandler struct {
	orders   ports.OrderRepository
	executor TransitionExecutor
	logger   *slog.Logger
}

// NewProcessOrderTimeoutsCommandHandler creates the timeout-sweep handler.
func NewProcessOrderTimeoutsCommandHandler(
	orders ports.OrderRepository,
	executor TransitionExecutor,
	logger *slog.Logger,
) ProcessOrderTimeoutsCommandHandler {
	return ProcessOrderTimeoutsCommandHandler{
		orders:   orders,
		executor: executor,
		logger:   logger.With("component", "order_timeout_runner"),
	}
}

// Handle runs both timeout rules once and returns the sweep summary.
func (h ProcessOrderTimeoutsCommandHandler) Handle(
	ctx context.Context,
	command ProcessOrderTimeoutsCommand,
) (ProcessOrderTimeoutsSummary, error) {
	summary := ProcessOrderTimeoutsSummary{}
	if err := command.Validate(); err != nil {
		return summary, err
	}

	now := time.Now().UTC()
	var queryErrs []error

	// Rule A: ready for more than 24 hours -> completed.
	readyOrders, err := h.orders.GetReadyBefore(ctx, now.Add(-ReadyOrderTimeout))
	if err != nil {
		queryErrs = append(queryErrs, err)
	}
	for _, stale := range readyOrders {
		h.autoTransition(ctx, &summary, &summary.AutoCompleted, stale,
			order.Completed, "", AutoCompleteMetadataReason)
	}

	// Rule B: pending without settled payment for more than 30 minutes -> cancelled.
	unpaidOrders, err := h.orders.GetUnpaidPendingBefore(ctx, now.Add(-UnpaidPendingTimeout))
	if err != nil {
		queryErrs = append(queryErrs, err)
	}
	for _, unpaid := range unpaidOrders {
		h.autoTransition(ctx, &summary, &summary.AutoCancelled, unpaid,
			order.Cancelled, PaymentTimeoutCancellationReason, AutoCancelMetadataReason)
	}

	return summary, errors.Join(queryErrs...)
}

func (h ProcessOrderTimeoutsCommandHandler) autoTransition(
	ctx context.Context,
	summary *ProcessOrderTimeoutsSummary,
	succeeded *[]string,
	candidate *order.Order,
	to order.Status,
	reason string,
	autoReason string,
) {
	orderID := candidate.ID().String()

	cmd, err := NewAutoTransitionOrderCommand(candidate.ID(), to, reason, autoReason)
	if err == nil {
		_, err = h.executor.Handle(ctx, cmd)
	}
	if err != nil {
		summary.Failures = append(summary.Failures, OrderFailure{OrderID: orderID, Err: err})
		h.logger.ErrorContext(ctx, "Automatic transition failed",
			"order_id", orderID,
			"to", to.String(),
			"auto_reason", autoReason,
			"error", err,
		)
		return
	}

	*succeeded = append(*succeeded, orderID)
}
