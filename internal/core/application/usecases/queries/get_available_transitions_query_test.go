package queries_test

import (
	"testing"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetAvailableTransitionsQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetAvailableTransitionsQuery(orderID, order.RoleBaker)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))
	assert.Equal(t, order.RoleBaker, query.ActorRole())
}

func TestNewGetAvailableTransitionsQuery_Invalid(t *testing.T) {
	t.Run("zero order ID", func(t *testing.T) {
		var zeroID kernel.UUID

		_, err := queries.NewGetAvailableTransitionsQuery(zeroID, order.RoleBaker)

		require.Error(t, err)
	})

	t.Run("unknown role", func(t *testing.T) {
		_, err := queries.NewGetAvailableTransitionsQuery(kernel.NewUUID(), order.RoleUnknown)

		require.Error(t, err)
	})
}

func TestGetAvailableTransitionsQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetAvailableTransitionsQuery

	err := query.Validate()

	require.Error(t, err)
	assert.Equal(t, queries.ErrGetAvailableTransitionsQueryIsNotConstructed, err)
}

func TestNewGetOrderHistoryQuery_Valid(t *testing.T) {
	orderID := kernel.NewUUID()

	query, err := queries.NewGetOrderHistoryQuery(orderID)

	require.NoError(t, err)
	require.NoError(t, query.Validate())
	assert.True(t, orderID.IsEqual(query.OrderID()))
}

func TestNewGetOrderHistoryQuery_Invalid(t *testing.T) {
	var zeroID kernel.UUID

	_, err := queries.NewGetOrderHistoryQuery(zeroID)

	require.Error(t, err)
}

func TestGetOrderHistoryQuery_NotConstructedViaConstructor(t *testing.T) {
	var query queries.GetOrderHistoryQuery

	err := query.Validate()

	require.Error(t, err)
	assert.Equal(t, queries.ErrGetOrderHistoryQueryIsNotConstructed, err)
}
