package queries_test

import (
	"context"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/queries"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransitionsOrderRepository struct{ mock.Mock }

func (m *MockTransitionsOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockTransitionsOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockTransitionsOrderRepository) CompareAndSetStatus(
	ctx context.Context, o *order.Order, expectedFrom order.Status,
) (bool, error) {
	args := m.Called(ctx, o, expectedFrom)
	return args.Bool(0), args.Error(1)
}

func (m *MockTransitionsOrderRepository) GetReadyBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockTransitionsOrderRepository) GetUnpaidPendingBefore(
	ctx context.Context, cutoff time.Time,
) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func TestGetAvailableTransitionsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	machine := services.NewOrderStateMachine()

	t.Run("returns targets for a confirmed paid order", func(t *testing.T) {
		testOrder, err := order.RestoreOrder(
			kernel.NewUUID(), order.Confirmed, order.PaymentPaid, order.Pickup, 2500,
			time.Now().UTC().Add(-time.Hour), nil, nil, nil, nil, "")
		require.NoError(t, err)

		orders := new(MockTransitionsOrderRepository)
		orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

		handler := queries.NewGetAvailableTransitionsQueryHandler(orders, machine)
		query, err := queries.NewGetAvailableTransitionsQuery(testOrder.ID(), order.RoleBaker)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, testOrder.ID().IsEqual(response.OrderID))
		assert.Equal(t, order.Confirmed, response.CurrentStatus)
		assert.ElementsMatch(t, []order.Status{order.InProgress, order.Cancelled}, response.Targets)
	})

	t.Run("returns empty targets for a terminal order", func(t *testing.T) {
		completedAt := time.Now().UTC().Add(-time.Hour)
		testOrder, err := order.RestoreOrder(
			kernel.NewUUID(), order.Completed, order.PaymentPaid, order.Pickup, 2500,
			completedAt.Add(-time.Hour), nil, nil, &completedAt, nil, "")
		require.NoError(t, err)

		orders := new(MockTransitionsOrderRepository)
		orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

		handler := queries.NewGetAvailableTransitionsQueryHandler(orders, machine)
		query, err := queries.NewGetAvailableTransitionsQuery(testOrder.ID(), order.RoleBaker)
		require.NoError(t, err)

		response, err := handler.Handle(ctx, query)

		require.NoError(t, err)
		assert.NotNil(t, response.Targets)
		assert.Empty(t, response.Targets)
	})

	t.Run("propagates not found", func(t *testing.T) {
		orderID := kernel.NewUUID()

		orders := new(MockTransitionsOrderRepository)
		orders.On("Get", ctx, orderID).
			Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

		handler := queries.NewGetAvailableTransitionsQueryHandler(orders, machine)
		query, err := queries.NewGetAvailableTransitionsQuery(orderID, order.RoleCustomer)
		require.NoError(t, err)

		_, err = handler.Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("rejects zero value query", func(t *testing.T) {
		orders := new(MockTransitionsOrderRepository)

		handler := queries.NewGetAvailableTransitionsQueryHandler(orders, machine)

		_, err := handler.Handle(ctx, queries.GetAvailableTransitionsQuery{})

		require.Error(t, err)
		orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})
}
