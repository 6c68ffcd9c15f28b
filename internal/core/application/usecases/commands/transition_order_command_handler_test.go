package commands_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"bakery/internal/core/application/usecases/commands"
	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/model/order"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CompareAndSetStatus(
	ctx context.Context, o *order.Order, expectedFrom order.Status,
) (bool, error) {
	args := m.Called(ctx, o, expectedFrom)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) GetReadyBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetUnpaidPendingBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Append(ctx context.Context, entry *order.HistoryEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*order.HistoryEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.HistoryEntry), args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, aggregate *order.Order, kind order.NotificationKind) error {
	args := m.Called(ctx, aggregate, kind)
	return args.Error(0)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func restoredOrder(t *testing.T, status order.Status, paymentStatus order.PaymentStatus) *order.Order {
	t.Helper()
	createdAt := time.Now().UTC().Add(-time.Hour)

	var readyAt *time.Time
	if status == order.Ready {
		at := time.Now().UTC().Add(-time.Minute)
		readyAt = &at
	}

	o, err := order.RestoreOrder(
		kernel.NewUUID(), status, paymentStatus, order.Pickup, 2500, createdAt,
		nil, readyAt, nil, nil, "")
	require.NoError(t, err)
	return o
}

func newTransitionHandler(
	orders *MockOrderRepository, history *MockHistoryRepository, notifier *MockNotifier,
) commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		orders, history, notifier, services.NewOrderStateMachine(), discardLogger())
}

func TestTransitionOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Pending, order.PaymentPaid)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	mock.InOrder(
		orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once(),
		orders.On("CompareAndSetStatus", ctx, testOrder, order.Pending).Return(true, nil).Once(),
		history.On("Append", ctx, mock.AnythingOfType("*order.HistoryEntry")).Return(nil).Once(),
		notifier.On("Notify", ctx, testOrder, order.NotifyConfirmed).Return(nil).Once(),
	)

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, order.RoleBaker, "")
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	assert.NotNil(t, updated.ConfirmedAt())
	orders.AssertExpectations(t)
	history.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_RecordsAuditDetails(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Confirmed, order.PaymentPaid)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orders.On("CompareAndSetStatus", ctx, testOrder, order.Confirmed).Return(true, nil).Once()

	var recorded *order.HistoryEntry
	history.On("Append", ctx, mock.AnythingOfType("*order.HistoryEntry")).
		Run(func(args mock.Arguments) {
			recorded = args.Get(1).(*order.HistoryEntry)
		}).Return(nil).Once()
	notifier.On("Notify", ctx, testOrder, order.NotifyCancelled).Return(nil).Once()

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(
		testOrder.ID(), order.Cancelled, order.RoleBaker, "oven is broken")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, recorded)
	assert.True(t, testOrder.ID().IsEqual(recorded.OrderID()))
	assert.Equal(t, order.Confirmed, recorded.PreviousStatus())
	assert.Equal(t, order.Cancelled, recorded.NewStatus())
	assert.Equal(t, order.RoleBaker, recorded.ActorRole())
	assert.Equal(t, "oven is broken", recorded.Reason())
	assert.False(t, recorded.Auto())
	assert.Equal(t, "oven is broken", testOrder.CancellationReason())
	assert.NotNil(t, testOrder.CancelledAt())
}

func TestTransitionOrderCommandHandler_Handle_InvalidTransitionWritesNothing(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Pending, order.PaymentPending)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, order.RoleBaker, "")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrPaymentRequired)
	assert.Equal(t, order.Pending, testOrder.Status())
	orders.AssertNotCalled(t, "CompareAndSetStatus", mock.Anything, mock.Anything, mock.Anything)
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()

	orders := new(MockOrderRepository)
	orders.On("Get", ctx, orderID).
		Return(nil, errs.NewObjectNotFoundError("orderID", orderID.String())).Once()

	handler := newTransitionHandler(orders, new(MockHistoryRepository), new(MockNotifier))
	cmd, err := commands.NewTransitionOrderCommand(orderID, order.Confirmed, order.RoleBaker, "")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestTransitionOrderCommandHandler_Handle_ConcurrencyConflict(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Pending, order.PaymentPaid)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orders.On("CompareAndSetStatus", ctx, testOrder, order.Pending).Return(false, nil).Once()

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, order.RoleBaker, "")
	require.NoError(t, err)

	_, err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrConcurrencyConflict)
	history.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything, mock.Anything)
}

func TestTransitionOrderCommandHandler_Handle_HistoryFailureDoesNotRevert(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Pending, order.PaymentPaid)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orders.On("CompareAndSetStatus", ctx, testOrder, order.Pending).Return(true, nil).Once()
	history.On("Append", ctx, mock.AnythingOfType("*order.HistoryEntry")).
		Return(errors.New("history table unavailable")).Once()
	notifier.On("Notify", ctx, testOrder, order.NotifyConfirmed).Return(nil).Once()

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Confirmed, order.RoleBaker, "")
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Confirmed, updated.Status())
	notifier.AssertExpectations(t)
}

func TestTransitionOrderCommandHandler_Handle_NotifierFailureDoesNotRevert(t *testing.T) {
	ctx := t.Context()
	testOrder := restoredOrder(t, order.Ready, order.PaymentPaid)

	orders := new(MockOrderRepository)
	history := new(MockHistoryRepository)
	notifier := new(MockNotifier)

	orders.On("Get", ctx, testOrder.ID()).Return(testOrder, nil).Once()
	orders.On("CompareAndSetStatus", ctx, testOrder, order.Ready).Return(true, nil).Once()
	history.On("Append", ctx, mock.AnythingOfType("*order.HistoryEntry")).Return(nil).Once()
	notifier.On("Notify", ctx, testOrder, order.NotifyCompleted).
		Return(errors.New("broker unreachable")).Once()

	handler := newTransitionHandler(orders, history, notifier)
	cmd, err := commands.NewTransitionOrderCommand(testOrder.ID(), order.Completed, order.RoleBaker, "")
	require.NoError(t, err)

	updated, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Completed, updated.Status())
	assert.NotNil(t, updated.CompletedAt())
}

func TestTransitionOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	orders := new(MockOrderRepository)

	handler := newTransitionHandler(orders, new(MockHistoryRepository), new(MockNotifier))

	_, err := handler.Handle(ctx, commands.TransitionOrderCommand{})

	require.Error(t, err)
	orders.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}
