package commands_test

import (
	"testing"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransitionOrderCommand(t *testing.T) {
	t.Run("creates valid command", func(t *testing.T) {
		orderID := kernel.NewUUID()

		cmd, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed, order.RoleBaker, "")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.True(t, orderID.IsEqual(cmd.OrderID()))
		assert.Equal(t, order.Confirmed, cmd.ToStatus())
		assert.Equal(t, order.RoleBaker, cmd.ActorRole())
		assert.Empty(t, cmd.Reason())
		assert.False(t, cmd.Auto())
	})

	t.Run("keeps the supplied reason", func(t *testing.T) {
		cmd, err := commands.NewTransitionOrderCommand(
			kernel.NewUUID(), order.Cancelled, order.RoleCustomer, "changed mind")

		require.NoError(t, err)
		assert.Equal(t, "changed mind", cmd.Reason())
	})

	t.Run("rejects zero order ID", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := commands.NewTransitionOrderCommand(zeroID, order.Confirmed, order.RoleBaker, "")

		require.Error(t, err)
	})

	t.Run("rejects invalid target status", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(
			kernel.NewUUID(), order.StatusUnknown, order.RoleBaker, "")

		require.Error(t, err)
	})

	t.Run("rejects invalid actor role", func(t *testing.T) {
		_, err := commands.NewTransitionOrderCommand(
			kernel.NewUUID(), order.Confirmed, order.RoleUnknown, "")

		require.Error(t, err)
	})
}

func TestNewAutoTransitionOrderCommand(t *testing.T) {
	t.Run("creates system-attributed command", func(t *testing.T) {
		cmd, err := commands.NewAutoTransitionOrderCommand(
			kernel.NewUUID(), order.Completed, "", commands.AutoCompleteMetadataReason)

		require.NoError(t, err)
		assert.Equal(t, order.RoleSystem, cmd.ActorRole())
		assert.True(t, cmd.Auto())
		assert.Equal(t, commands.AutoCompleteMetadataReason, cmd.AutoReason())
	})

	t.Run("requires a metadata reason", func(t *testing.T) {
		_, err := commands.NewAutoTransitionOrderCommand(
			kernel.NewUUID(), order.Completed, "", "  ")

		require.ErrorIs(t, err, commands.ErrAutoReasonIsRequired)
	})
}

func TestTransitionOrderCommand_Validate(t *testing.T) {
	t.Run("zero value command is rejected", func(t *testing.T) {
		var cmd commands.TransitionOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.Equal(t, commands.ErrTransitionOrderCommandIsNotConstructed, err)
	})
}
