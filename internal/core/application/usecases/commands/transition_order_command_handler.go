package commands

import (
	"context"
	"log/slog"
	"time"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/core/ports"
	"bakery/internal/pkg/errs"
)

// TransitionOrderCommandHandler applies one validated transition against
// persisted storage. It is the only writer of order status.
//
// Side effects run in a fixed order: conditional status write, history
// append, notification dispatch. The status write is guarded by an
// optimistic compare-and-set on the previously observed status; if another
// transition won the race the handler returns a concurrency conflict and
// the caller must reload and decide whether to retry. History and
// notification failures are reported through the logger but never revert
// the committed status write.
//
// Example:
//
//	cmd, _ := NewTransitionOrderCommand(orderID, order.Cancelled, order.RoleCustomer, "changed my mind")
//	updated, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrConcurrencyConflict):
//	    // reload and retry or surface to the user
//	case errors.Is(err, services.ErrInvalidTransition):
//	    // hard rejection, nothing was written
//	}
type TransitionOrderCommandHandler struct {
	orders   ports.OrderRepository
	history  ports.HistoryRepository
	notifier ports.Notifier
	machine  services.OrderStateMachine
	logger   *slog.Logger
}

// NewTransitionOrderCommandHandler creates the transition executor.
func NewTransitionOrderCommandHandler(
	orders ports.OrderRepository,
	history ports.HistoryRepository,
	notifier ports.Notifier,
	machine services.OrderStateMachine,
	logger *slog.Logger,
) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		orders:   orders,
		history:  history,
		notifier: notifier,
		machine:  machine,
		logger:   logger.With("component", "transition_executor"),
	}
}

// Handle processes one transition attempt. Validation failures return
// before any write; after the status write succeeds, the updated order is
// returned even if audit or notification side effects fail.
func (h TransitionOrderCommandHandler) Handle(
	ctx context.Context,
	command TransitionOrderCommand,
) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	from := aggregate.Status()
	if err = h.machine.ValidateTransition(aggregate, command.ToStatus(), command.ActorRole(), command.Reason()); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err = aggregate.Transition(command.ToStatus(), command.Reason(), now); err != nil {
		return nil, err
	}

	applied, err := h.orders.CompareAndSetStatus(ctx, aggregate, from)
	if err != nil {
		return nil, err
	}
	if !applied {
		return nil, errs.NewConcurrencyConflictError("order", aggregate.ID().String())
	}

	h.appendHistory(ctx, command, from, now)
	h.dispatchNotification(ctx, aggregate, command.ToStatus())

	return aggregate, nil
}

// appendHistory records the audit entry. History is audit-only, not
// authoritative: a failure here is reported, never propagated.
func (h TransitionOrderCommandHandler) appendHistory(
	ctx context.Context,
	command TransitionOrderCommand,
	from order.Status,
	occurredAt time.Time,
) {
	entry, err := order.NewHistoryEntry(
		command.OrderID(),
		from,
		command.ToStatus(),
		command.ActorRole(),
		command.Reason(),
		command.Auto(),
		command.AutoReason(),
		occurredAt,
	)
	if err == nil {
		err = h.history.Append(ctx, entry)
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "Failed to append status history",
			"order_id", command.OrderID().String(),
			"from", from.String(),
			"to", command.ToStatus().String(),
			"error", err,
		)
	}
}

// dispatchNotification emits the customer-facing event for the reached
// status. Best effort: failures are logged only.
func (h TransitionOrderCommandHandler) dispatchNotification(
	ctx context.Context,
	aggregate *order.Order,
	reached order.Status,
) {
	kind := order.NotificationKindFor(reached)
	if kind == order.NotifyNone {
		return
	}

	if err := h.notifier.Notify(ctx, aggregate, kind); err != nil {
		h.logger.WarnContext(ctx, "Notification dispatch failed",
			"order_id", aggregate.ID().String(),
			"kind", kind.String(),
			"error", err,
		)
	}
}
