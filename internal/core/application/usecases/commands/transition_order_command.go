package commands

import (
	"errors"
	"strings"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand or NewAutoTransitionOrderCommand",
	)
	ErrAutoReasonIsRequired = errors.New("automatic transitions require a metadata reason")
)

// TransitionOrderCommand requests one status change for one order on behalf
// of an actor. Whether the change is permitted is decided later by the
// state machine; the command only validates its own shape.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(orderID, order.Confirmed, order.RoleBaker, "")
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	toStatus   order.Status
	actorRole  order.Role
	reason     string
	auto       bool
	autoReason string

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a transition request on behalf of an
// interactive actor. The reason is required only for cancellations, which
// the state machine enforces.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	toStatus order.Status,
	actorRole order.Role,
	reason string,
) (TransitionOrderCommand, error) {
	cmd := TransitionOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setToStatus(toStatus),
		cmd.setActorRole(actorRole),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	cmd.reason = reason
	return cmd, nil
}

// NewAutoTransitionOrderCommand creates a system-attributed transition
// request for the scheduled runner. The metadata reason lands on the
// history entry (e.g. "24_hour_timeout").
func NewAutoTransitionOrderCommand(
	orderID kernel.UUID,
	toStatus order.Status,
	reason string,
	autoReason string,
) (TransitionOrderCommand, error) {
	cmd, err := NewTransitionOrderCommand(orderID, toStatus, order.RoleSystem, reason)
	if err != nil {
		return TransitionOrderCommand{}, err
	}
	if strings.TrimSpace(autoReason) == "" {
		return TransitionOrderCommand{}, ErrAutoReasonIsRequired
	}

	cmd.auto = true
	cmd.autoReason = autoReason
	return cmd, nil
}

// Validate ensures the command was created through a constructor.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order to transition.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ToStatus returns the requested target status.
func (c TransitionOrderCommand) ToStatus() order.Status {
	return c.toStatus
}

// ActorRole returns who requests the transition.
func (c TransitionOrderCommand) ActorRole() order.Role {
	return c.actorRole
}

// Reason returns the human-facing reason, if one was supplied.
func (c TransitionOrderCommand) Reason() string {
	return c.reason
}

// Auto reports whether the scheduled runner issued the command.
func (c TransitionOrderCommand) Auto() bool {
	return c.auto
}

// AutoReason returns the history metadata reason for automatic commands.
func (c TransitionOrderCommand) AutoReason() string {
	return c.autoReason
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setToStatus(toStatus order.Status) error {
	if err := toStatus.Validate(); err != nil {
		return err
	}
	c.toStatus = toStatus
	return nil
}

func (c *TransitionOrderCommand) setActorRole(actorRole order.Role) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}
	c.actorRole = actorRole
	return nil
}
