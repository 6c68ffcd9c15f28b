// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// a single validated status write, and best-effort side effects.
package commands

import (
	"context"

	"bakery/internal/core/domain/model/order"
)

// TransitionExecutor applies one validated order transition end to end.
// Implemented by TransitionOrderCommandHandler; the scheduled timeout
// handler depends on this interface so tests can substitute it.
type TransitionExecutor interface {
	Handle(ctx context.Context, command TransitionOrderCommand) (*order.Order, error)
}
