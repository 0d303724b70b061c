package voice_test

import (
	"context"
	"testing"
	"time"

	"porter/internal/adapters/in/voice"
	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionReader struct{ mock.Mock }

func (m *MockSessionReader) Handle(ctx context.Context, q queries.GetCurrentSessionQuery) (queries.SessionResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.SessionResponse), args.Error(1)
}

type MockOrderLister struct{ mock.Mock }

func (m *MockOrderLister) Handle(ctx context.Context, q queries.GetOrdersQuery) ([]queries.OrderResponse, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]queries.OrderResponse), args.Error(1)
}

type MockEarningsReader struct{ mock.Mock }

func (m *MockEarningsReader) Handle(ctx context.Context, q queries.GetEarningsQuery) (queries.EarningsResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(queries.EarningsResponse), args.Error(1)
}

type MockOrderStatusChanger struct{ mock.Mock }

func (m *MockOrderStatusChanger) Handle(
	ctx context.Context,
	cmd commands.ChangeOrderStatusCommand,
) (services.Transition, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.Transition), args.Error(1)
}

type MockDriverStatusSetter struct{ mock.Mock }

func (m *MockDriverStatusSetter) Handle(ctx context.Context, cmd commands.SetDriverStatusCommand) (driver.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(driver.Status), args.Error(1)
}

type MockSOSSender struct{ mock.Mock }

func (m *MockSOSSender) Handle(
	ctx context.Context,
	cmd commands.SendSOSAlertCommand,
) (*notification.Notification, error) {
	args := m.Called(ctx, cmd)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

type dispatcherMocks struct {
	session  *MockSessionReader
	orders   *MockOrderLister
	earnings *MockEarningsReader
	change   *MockOrderStatusChanger
	status   *MockDriverStatusSetter
	sos      *MockSOSSender
}

func newDispatcher(t *testing.T, loggedIn bool) (*voice.Dispatcher, dispatcherMocks) {
	t.Helper()
	m := dispatcherMocks{
		session:  &MockSessionReader{},
		orders:   &MockOrderLister{},
		earnings: &MockEarningsReader{},
		change:   &MockOrderStatusChanger{},
		status:   &MockDriverStatusSetter{},
		sos:      &MockSOSSender{},
	}

	if loggedIn {
		m.session.On("Handle", mock.Anything, mock.Anything).Return(queries.SessionResponse{Name: "John Smith"}, nil).Maybe()
	} else {
		m.session.On("Handle", mock.Anything, mock.Anything).Return(queries.SessionResponse{}, account.ErrUnauthenticated).Maybe()
	}

	t.Cleanup(func() {
		m.session.AssertExpectations(t)
		m.orders.AssertExpectations(t)
		m.earnings.AssertExpectations(t)
		m.change.AssertExpectations(t)
		m.status.AssertExpectations(t)
		m.sos.AssertExpectations(t)
	})

	d := voice.NewDispatcher(voice.NewClassifier(), voice.Handlers{
		Session:      m.session,
		Orders:       m.orders,
		Earnings:     m.earnings,
		ChangeStatus: m.change,
		SetStatus:    m.status,
		SOS:          m.sos,
	})
	return d, m
}

func orderAt(status order.Status, created time.Time) queries.OrderResponse {
	return queries.OrderResponse{
		ID:       kernel.NewUUID(),
		Status:   status,
		Timeline: order.Timeline{CreatedAt: created},
	}
}

func withFilter(filter queries.OrderFilter) any {
	return mock.MatchedBy(func(q queries.GetOrdersQuery) bool { return q.Filter() == filter })
}

func withTarget(id kernel.UUID, target order.Status) any {
	return mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
		return cmd.OrderID().IsEqual(id) && cmd.Target() == target
	})
}

func TestDispatcher_Dispatch(t *testing.T) {
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	t.Run("should require an active session", func(t *testing.T) {
		d, _ := newDispatcher(t, false)

		_, err := d.Dispatch(t.Context(), voice.AcceptOrder)

		require.ErrorIs(t, err, account.ErrUnauthenticated)
	})

	t.Run("should accept the oldest available order", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		newer := orderAt(order.Available, base)
		older := orderAt(order.Available, base.Add(-time.Hour))
		m.orders.On("Handle", mock.Anything, withFilter(queries.AvailableOrders)).
			Return([]queries.OrderResponse{newer, older}, nil)
		m.change.On("Handle", mock.Anything, withTarget(older.ID, order.Accepted)).
			Return(services.Transition{From: order.Available, To: order.Accepted}, nil)

		reply, err := d.Dispatch(t.Context(), voice.AcceptOrder)

		require.NoError(t, err)
		assert.Equal(t, voice.AcceptOrder, reply.Token)
		require.NotNil(t, reply.OrderID)
		assert.True(t, reply.OrderID.IsEqual(older.ID))
		assert.Equal(t, "Order accepted. Navigate to pickup location.", reply.Message)
	})

	t.Run("should decline an available order", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		available := orderAt(order.Available, base)
		m.orders.On("Handle", mock.Anything, withFilter(queries.AvailableOrders)).
			Return([]queries.OrderResponse{available}, nil)
		m.change.On("Handle", mock.Anything, withTarget(available.ID, order.Cancelled)).
			Return(services.Transition{From: order.Available, To: order.Cancelled}, nil)

		reply, err := d.Dispatch(t.Context(), voice.DeclineOrder)

		require.NoError(t, err)
		assert.Equal(t, "Order declined.", reply.Message)
	})

	t.Run("should move only orders in the preceding status", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		accepted := orderAt(order.Accepted, base.Add(-2*time.Hour))
		inTransit := orderAt(order.InTransit, base)
		m.orders.On("Handle", mock.Anything, withFilter(queries.ActiveOrders)).
			Return([]queries.OrderResponse{accepted, inTransit}, nil)
		m.change.On("Handle", mock.Anything, withTarget(inTransit.ID, order.Delivered)).
			Return(services.Transition{From: order.InTransit, To: order.Delivered}, nil)

		reply, err := d.Dispatch(t.Context(), voice.MarkDelivered)

		require.NoError(t, err)
		assert.True(t, reply.OrderID.IsEqual(inTransit.ID))
		assert.Equal(t, "Order marked as delivered. Great job!", reply.Message)
	})

	t.Run("should report when no order can take the step", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		m.orders.On("Handle", mock.Anything, withFilter(queries.ActiveOrders)).
			Return([]queries.OrderResponse{orderAt(order.Accepted, base)}, nil)

		_, err := d.Dispatch(t.Context(), voice.MarkInTransit)

		require.ErrorIs(t, err, voice.ErrNoEligibleOrder)
		m.change.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("should set the driver status", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		m.status.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.SetDriverStatusCommand) bool {
			return cmd.Status() == driver.Offline
		})).Return(driver.Offline, nil)

		reply, err := d.Dispatch(t.Context(), voice.GoOffline)

		require.NoError(t, err)
		assert.Equal(t, "You are now offline and won't receive new requests.", reply.Message)
	})

	t.Run("should read out today's earnings", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		m.earnings.On("Handle", mock.Anything, mock.Anything).
			Return(queries.EarningsResponse{Earnings: 12.5, Deliveries: 2}, nil)

		reply, err := d.Dispatch(t.Context(), voice.ShowEarnings)

		require.NoError(t, err)
		assert.Equal(t, "Today you earned $12.50 from 2 deliveries.", reply.Message)
	})

	t.Run("should count active orders", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		m.orders.On("Handle", mock.Anything, withFilter(queries.ActiveOrders)).
			Return([]queries.OrderResponse{orderAt(order.Accepted, base), orderAt(order.PickedUp, base)}, nil)

		reply, err := d.Dispatch(t.Context(), voice.ShowOrders)

		require.NoError(t, err)
		assert.Equal(t, "You have 2 active orders.", reply.Message)
	})

	t.Run("should send an SOS alert", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		alert, err := services.NewAlerts().SOS(kernel.NewUUID(), base)
		require.NoError(t, err)
		m.sos.On("Handle", mock.Anything, mock.Anything).Return(alert, nil)

		reply, err := d.Dispatch(t.Context(), voice.SOS)

		require.NoError(t, err)
		assert.Equal(t, voice.SOS, reply.Token)
	})

	t.Run("should reject an unknown token", func(t *testing.T) {
		d, _ := newDispatcher(t, true)

		_, err := d.Dispatch(t.Context(), voice.Token("dance"))

		require.ErrorIs(t, err, voice.ErrUnknownToken)
	})
}

func TestDispatcher_Handle(t *testing.T) {
	t.Run("should classify then dispatch", func(t *testing.T) {
		d, m := newDispatcher(t, true)
		m.status.On("Handle", mock.Anything, mock.Anything).Return(driver.Online, nil)

		reply, err := d.Handle(t.Context(), "Go online now")

		require.NoError(t, err)
		assert.Equal(t, voice.GoOnline, reply.Token)
	})

	t.Run("should not touch the core for an unrecognized utterance", func(t *testing.T) {
		d, m := newDispatcher(t, true)

		_, err := d.Handle(t.Context(), "sing a song")

		require.ErrorIs(t, err, voice.ErrUnrecognized)
		m.session.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}
