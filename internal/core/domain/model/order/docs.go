// Package order contains the order aggregate and the value objects that
// describe its lifecycle: Status, Role, PaymentStatus, DeliveryOption, and
// NotificationKind, plus the append-only HistoryEntry audit record.
//
// Status changes never happen by assignment. Callers validate a requested
// transition through the state machine in the services package and then
// record it with Order.Transition, which stamps lifecycle timestamps
// exactly once and stores the cancellation reason.
//
// The two delivery variants carry different status sequences:
//
//	pickup:   pending -> confirmed -> in_progress -> ready -> completed
//	delivery: pending -> confirmed -> in_progress -> ready -> out_for_delivery -> delivered
//
// with cancelled reachable as a side branch subject to role rules.
package order
