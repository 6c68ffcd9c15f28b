package order

import (
	"fmt"

	"bakery/internal/pkg/errs"
)

// Status represents the lifecycle state of a storefront order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// Pending is the initial status: the order exists but has not been
	// accepted by the bakery yet.
	Pending

	// Confirmed indicates the bakery accepted the order. Requires the
	// payment to be settled.
	Confirmed

	// InProgress indicates production has started. Customers can no
	// longer cancel from this point on.
	InProgress

	// Ready indicates the order is baked and waiting for pickup or dispatch.
	Ready

	// OutForDelivery indicates a delivery-variant order left the bakery.
	OutForDelivery

	// Delivered is the terminal status for delivery-variant orders.
	Delivered

	// Completed is the terminal status for pickup-variant orders.
	Completed

	// Cancelled is a terminal side branch, reachable per role rules.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		InProgress:     "in_progress",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		InProgress:     "in_progress",
		Ready:          "ready",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// AllStatuses returns every valid status, in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Confirmed, InProgress, Ready, OutForDelivery, Delivered, Completed, Cancelled}
}

// StatusFromString parses the persisted/wire form of a status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the persisted/wire name of the status.
// Implements fmt.Stringer; safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further customer-visible transitions exist
// from this status for non-privileged roles.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Completed || s == Cancelled
}
