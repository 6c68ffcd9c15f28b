package order

import (
	"errors"
	"strings"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"
)

var (
	// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was
	// not created through NewHistoryEntry.
	ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry")
)

// HistoryEntry is one append-only audit row per successful transition,
// including automatic ones. Entries are never mutated or deleted.
type HistoryEntry struct {
	id             kernel.UUID
	orderID        kernel.UUID
	previousStatus Status
	newStatus      Status
	actorRole      Role

	// reason is the human-facing reason supplied with the transition
	// (mandatory for cancellations, empty otherwise)
	reason string

	// auto marks transitions applied by the scheduled runner;
	// autoReason carries the machine reason, e.g. "24_hour_timeout"
	auto       bool
	autoReason string

	occurredAt time.Time

	isConstructed bool
}

// NewHistoryEntry creates an audit entry for a successful transition.
// Automatic entries must carry a machine reason.
func NewHistoryEntry(
	orderID kernel.UUID,
	previousStatus, newStatus Status,
	actorRole Role,
	reason string,
	auto bool,
	autoReason string,
	occurredAt time.Time,
) (*HistoryEntry, error) {
	if err := errors.Join(
		orderID.Validate(),
		previousStatus.Validate(),
		newStatus.Validate(),
		actorRole.Validate(),
	); err != nil {
		return nil, err
	}
	if occurredAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("occurredAt")
	}
	if auto && strings.TrimSpace(autoReason) == "" {
		return nil, errs.NewValueIsRequiredError("autoReason")
	}

	return &HistoryEntry{
		id:             kernel.NewUUID(),
		orderID:        orderID,
		previousStatus: previousStatus,
		newStatus:      newStatus,
		actorRole:      actorRole,
		reason:         reason,
		auto:           auto,
		autoReason:     autoReason,
		occurredAt:     occurredAt,
		isConstructed:  true,
	}, nil
}

// RestoreHistoryEntry reconstructs an audit entry from persistence.
func RestoreHistoryEntry(
	id, orderID kernel.UUID,
	previousStatus, newStatus Status,
	actorRole Role,
	reason string,
	auto bool,
	autoReason string,
	occurredAt time.Time,
) (*HistoryEntry, error) {
	entry, err := NewHistoryEntry(orderID, previousStatus, newStatus, actorRole, reason, auto, autoReason, occurredAt)
	if err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}
	entry.id = id
	return entry, nil
}

// Validate ensures the entry was created through a constructor.
func (e *HistoryEntry) Validate() error {
	if e == nil || !e.isConstructed {
		return ErrHistoryEntryIsNotConstructed
	}
	return nil
}

// ID returns the entry's unique identifier.
func (e *HistoryEntry) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order this entry audits.
func (e *HistoryEntry) OrderID() kernel.UUID {
	return e.orderID
}

// PreviousStatus returns the status before the transition.
func (e *HistoryEntry) PreviousStatus() Status {
	return e.previousStatus
}

// NewStatus returns the status after the transition.
func (e *HistoryEntry) NewStatus() Status {
	return e.newStatus
}

// ActorRole returns who performed the transition.
func (e *HistoryEntry) ActorRole() Role {
	return e.actorRole
}

// Reason returns the human-facing reason, if one was supplied.
func (e *HistoryEntry) Reason() string {
	return e.reason
}

// Auto reports whether the scheduled runner applied the transition.
func (e *HistoryEntry) Auto() bool {
	return e.auto
}

// AutoReason returns the machine reason for automatic transitions.
func (e *HistoryEntry) AutoReason() string {
	return e.autoReason
}

// OccurredAt returns when the transition happened.
func (e *HistoryEntry) OccurredAt() time.Time {
	return e.occurredAt
}
