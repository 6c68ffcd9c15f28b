package services

import (
	"strings"

	"bakery/internal/core/domain/model/order"
)

// OrderStateMachine decides whether an order status transition is permitted.
// It combines three layers, checked in order:
//
//  1. the role/sequence gate: which actor may request which edge,
//  2. unconditional business guards: payment settled before confirmation,
//     a reason for cancellation, the ready state before completion,
//
// and exposes the set of currently available transitions for UI rendering.
//
// The privileged-role set is an injected policy table rather than inline
// role comparisons, so alternate hierarchies can be substituted in tests.
// Privileged roles bypass the forward-only sequence restriction but never
// the business guards.
type OrderStateMachine struct {
	privileged map[order.Role]struct{}
}

// NewOrderStateMachine creates a state machine with the default privilege
// policy: owner, admin, and system.
func NewOrderStateMachine() OrderStateMachine {
	return NewOrderStateMachineWithPrivileged(order.RoleOwner, order.RoleAdmin, order.RoleSystem)
}

// NewOrderStateMachineWithPrivileged creates a state machine treating
// exactly the given roles as privileged.
func NewOrderStateMachineWithPrivileged(roles ...order.Role) OrderStateMachine {
	privileged := make(map[order.Role]struct{}, len(roles))
	for _, role := range roles {
		privileged[role] = struct{}{}
	}
	return OrderStateMachine{privileged: privileged}
}

// IsPrivileged reports whether the policy exempts the role from the
// forward-only sequence restriction.
func (m OrderStateMachine) IsPrivileged(role order.Role) bool {
	_, ok := m.privileged[role]
	return ok
}

// CanTransition applies the role/sequence gate. It is pure and
// deterministic: no business guards, no I/O.
//
//   - privileged roles: any transition between defined statuses
//   - customer: only pending/confirmed -> cancelled
//   - baker: adjacent forward steps along the order's variant sequence,
//     plus pending/confirmed -> cancelled
//   - unknown roles or statuses: nothing
func (m OrderStateMachine) CanTransition(from, to order.Status, option order.DeliveryOption, role order.Role) bool {
	if from.Validate() != nil || to.Validate() != nil {
		return false
	}
	if m.IsPrivileged(role) {
		return true
	}

	//nolint:exhaustive // privileged roles are handled by the policy above
	switch role {
	case order.RoleCustomer:
		return to == order.Cancelled && (from == order.Pending || from == order.Confirmed)
	case order.RoleBaker:
		if to == order.Cancelled && (from == order.Pending || from == order.Confirmed) {
			return true
		}
		seq := option.Sequence()
		i, j := statusIndex(seq, from), statusIndex(seq, to)
		return i >= 0 && j == i+1
	default:
		return false
	}
}

// ValidateTransition runs the full decision for one transition attempt:
// the role/sequence gate first, then the unconditional business guards.
// A nil return means the transition may be applied.
func (m OrderStateMachine) ValidateTransition(o *order.Order, to order.Status, role order.Role, reason string) error {
	return m.validate(o, to, role, reason, true)
}

// AvailableTransitions returns every status the role could currently move
// the order to, excluding the current status. The cancellation-reason guard
// is request-scoped rather than state-scoped, so it is not consulted here;
// callers still supply a reason when executing the cancellation. Treat the
// result as a set.
func (m OrderStateMachine) AvailableTransitions(o *order.Order, role order.Role) []order.Status {
	available := make([]order.Status, 0)
	for _, to := range order.AllStatuses() {
		if to == o.Status() {
			continue
		}
		if m.validate(o, to, role, "", false) == nil {
			available = append(available, to)
		}
	}
	return available
}

func (m OrderStateMachine) validate(
	o *order.Order,
	to order.Status,
	role order.Role,
	reason string,
	requireReason bool,
) error {
	if err := o.Validate(); err != nil {
		return err
	}

	from := o.Status()
	if !m.CanTransition(from, to, o.DeliveryOption(), role) {
		backwards := !m.IsPrivileged(role) && isBackwards(from, to, o.DeliveryOption())
		return NewInvalidTransitionError(role, from, to, backwards)
	}

	// Business guards hold for every role, privileged or not.
	//nolint:exhaustive // only these targets carry guards
	switch to {
	case order.Confirmed:
		if o.PaymentStatus() != order.PaymentPaid {
			return NewPaymentRequiredError(o.PaymentStatus())
		}
	case order.Cancelled:
		if requireReason && strings.TrimSpace(reason) == "" {
			return NewReasonRequiredError()
		}
	case order.Completed:
		if from != order.Ready || o.ReadyAt() == nil {
			return NewOrderNotReadyError(from)
		}
	}

	return nil
}

// isBackwards reports whether to sits earlier than from in the variant
// sequence. Statuses outside the sequence (cancelled) are never backwards.
func isBackwards(from, to order.Status, option order.DeliveryOption) bool {
	seq := option.Sequence()
	i, j := statusIndex(seq, from), statusIndex(seq, to)
	return i >= 0 && j >= 0 && j < i
}

func statusIndex(seq []order.Status, s order.Status) int {
	for i, status := range seq {
		if status == s {
			return i
		}
	}
	return -1
}
