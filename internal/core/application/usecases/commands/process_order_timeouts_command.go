package commands

import (
	"errors"

	"bakery/internal/pkg/guard"
)

var (
	ErrProcessOrderTimeoutsCommandIsNotConstructed = errors.New(
		"ProcessOrderTimeoutsCommand must be created via NewProcessOrderTimeoutsCommand constructor",
	)
)

// ProcessOrderTimeoutsCommand requests one sweep of the two timeout rules:
// auto-completing stale ready orders and auto-cancelling unpaid pending
// orders. Parameterless; the cutoffs are fixed business constants.
type ProcessOrderTimeoutsCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessOrderTimeoutsCommand creates a timeout-sweep command.
func NewProcessOrderTimeoutsCommand() ProcessOrderTimeoutsCommand {
	return ProcessOrderTimeoutsCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c ProcessOrderTimeoutsCommand) Validate() error {
	return c.guard.Validate(ErrProcessOrderTimeoutsCommandIsNotConstructed)
}
