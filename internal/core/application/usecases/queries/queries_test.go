package queries_test

import (
	"context"
	"testing"
	"time"

	"porter/internal/adapters/out/memory"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/model/trip"
	"porter/internal/core/ports"
	"porter/internal/pkg/clock"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

// QueriesTestSuite seeds the in-memory store directly and reads it back
// through the query handlers.
type QueriesTestSuite struct {
	suite.Suite

	ctx     context.Context
	clock   *clock.Manual
	factory ports.UnitOfWorkFactory

	account *account.Account
	orders  map[order.Status]kernel.UUID
}

func TestQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesTestSuite))
}

func (s *QueriesTestSuite) SetupTest() {
	s.ctx = s.T().Context()
	s.clock = clock.NewManual(time.Date(2026, 3, 2, 18, 0, 0, 0, time.UTC))
	s.factory = memory.NewUnitOfWorkFactory(memory.NewStore())
	s.orders = map[order.Status]kernel.UUID{}

	vehicle, err := kernel.NewVehicle("Car", "ABC-123")
	s.Require().NoError(err)
	s.account, err = account.NewAccount(
		kernel.NewUUID(), "John Smith", "john.smith@porter.com", "+1 (555) 123-4567", vehicle, "DL123456789", "hash", s.clock.Now(),
	)
	s.Require().NoError(err)
	s.Require().NoError(s.account.Approve())

	d, err := driver.NewDriver(s.account.ID(), s.account.Name(), s.account.Email(), s.account.Phone(), vehicle)
	s.Require().NoError(err)
	d.Toggle()

	s.write(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.AccountRepository().Add(s.ctx, s.account))
		s.Require().NoError(uow.DriverRepository().Add(s.ctx, d))

		for _, seed := range []struct {
			payment float64
			status  order.Status
		}{
			{38.95, order.Available},
			{31.47, order.Accepted},
			{52.73, order.PickedUp},
			{46.67, order.Delivered},
			{12.50, order.Cancelled},
		} {
			o := s.newOrder(seed.payment, seed.status, d)
			s.orders[seed.status] = o.ID()
			s.Require().NoError(uow.OrderRepository().Add(s.ctx, o))
		}
	})
}

func (s *QueriesTestSuite) write(fn func(uow ports.UnitOfWork)) {
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(s.ctx))
	defer func() { _ = uow.Rollback(s.ctx) }()
	fn(uow)
	s.Require().NoError(uow.Commit(s.ctx))
}

func (s *QueriesTestSuite) location(address string) kernel.Location {
	loc, err := kernel.NewLocation(40.7589, -73.9851, address)
	s.Require().NoError(err)
	return loc
}

func (s *QueriesTestSuite) newOrder(payment float64, status order.Status, d *driver.Driver) *order.Order {
	customer, err := order.NewCustomer("Sarah Johnson", "+1 (555) 987-6543")
	s.Require().NoError(err)
	route, err := order.NewRoute(s.location("Times Square"), s.location("Rockefeller Center"), 2.3, 15)
	s.Require().NoError(err)
	item, err := order.NewItem("Burger Combo", 2, 12.99)
	s.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), customer, route, []order.Item{item}, payment, "", s.clock.Now().Add(-time.Hour))
	s.Require().NoError(err)

	if status == order.Cancelled {
		s.Require().NoError(o.Cancel(s.clock.Now()))
		return o
	}
	for o.Status() != status {
		s.Require().NoError(o.Advance(d.ID(), s.clock.Now()))
	}
	return o
}

func (s *QueriesTestSuite) login() {
	session, err := account.NewSession(s.account, "token", s.clock.Now(), s.clock.Now().Add(12*time.Hour))
	s.Require().NoError(err)
	s.write(func(uow ports.UnitOfWork) {
		s.Require().NoError(uow.SessionRepository().Save(s.ctx, session))
	})
}

func (s *QueriesTestSuite) TestQueriesRequireSession() {
	orders := queries.NewGetOrdersQueryHandler(s.factory, s.clock)
	query, err := queries.NewGetOrdersQuery(queries.AllOrders)
	s.Require().NoError(err)

	_, err = orders.Handle(s.ctx, query)
	s.Require().ErrorIs(err, account.ErrUnauthenticated)

	_, err = queries.NewGetDashboardQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetDashboardQuery())
	s.Require().ErrorIs(err, account.ErrUnauthenticated)

	sessions := queries.NewGetCurrentSessionQueryHandler(s.factory, s.clock)
	s.False(sessions.IsAuthenticated(s.ctx))

	s.login()
	s.True(sessions.IsAuthenticated(s.ctx))

	s.clock.Advance(12 * time.Hour)
	s.False(sessions.IsAuthenticated(s.ctx))
	_, err = orders.Handle(s.ctx, query)
	s.Require().ErrorIs(err, account.ErrUnauthenticated)
}

func (s *QueriesTestSuite) TestCurrentSession() {
	s.login()

	resp, err := queries.NewGetCurrentSessionQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetCurrentSessionQuery())

	s.Require().NoError(err)
	s.Equal("john.smith@porter.com", resp.Email)
	s.Equal(account.Approved, resp.Status)
	s.Equal("DL123456789", resp.License)
	s.Equal("token", resp.Token)
}

func (s *QueriesTestSuite) TestOrderFilters() {
	s.login()
	handler := queries.NewGetOrdersQueryHandler(s.factory, s.clock)

	tests := map[queries.OrderFilter][]order.Status{
		queries.AllOrders:       {order.Available, order.Accepted, order.PickedUp, order.Delivered, order.Cancelled},
		queries.AvailableOrders: {order.Available},
		queries.ActiveOrders:    {order.Accepted, order.PickedUp},
		queries.CompletedOrders: {order.Delivered, order.Cancelled},
	}

	for filter, expected := range tests {
		s.Run("should list "+filter.String()+" orders in insertion order", func() {
			query, err := queries.NewGetOrdersQuery(filter)
			s.Require().NoError(err)

			orders, err := handler.Handle(s.ctx, query)
			s.Require().NoError(err)

			var statuses []order.Status
			for _, o := range orders {
				statuses = append(statuses, o.Status)
			}
			s.Equal(expected, statuses)
		})
	}
}

func (s *QueriesTestSuite) TestParseOrderFilter() {
	filter, err := queries.ParseOrderFilter(" Active ")
	s.Require().NoError(err)
	s.Equal(queries.ActiveOrders, filter)

	_, err = queries.ParseOrderFilter("unknown")
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)

	_, err = queries.NewGetOrdersQuery(queries.UnknownFilter)
	s.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (s *QueriesTestSuite) TestGetOrder() {
	s.login()
	handler := queries.NewGetOrderQueryHandler(s.factory, s.clock)

	query, err := queries.NewGetOrderQuery(s.orders[order.Delivered])
	s.Require().NoError(err)
	resp, err := handler.Handle(s.ctx, query)
	s.Require().NoError(err)
	s.Equal(order.Delivered, resp.Status)
	s.InDelta(46.67*order.CommissionRate, resp.Commission, 1e-9)
	s.Require().NotNil(resp.DriverID)
	s.True(resp.DriverID.IsEqual(s.account.ID()))

	missing, err := queries.NewGetOrderQuery(kernel.NewUUID())
	s.Require().NoError(err)
	_, err = handler.Handle(s.ctx, missing)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (s *QueriesTestSuite) TestDashboard() {
	s.login()
	s.write(func(uow ports.UnitOfWork) {
		for _, title := range []string{"one", "two"} {
			n, err := notification.NewNotification(kernel.NewUUID(), title, "message", notification.Info, s.clock.Now())
			s.Require().NoError(err)
			s.Require().NoError(uow.NotificationRepository().Add(s.ctx, n))
		}
		t, err := trip.NewTrip(kernel.NewUUID(), s.location("Times Square"), s.clock.Now())
		s.Require().NoError(err)
		s.Require().NoError(uow.TripRepository().SaveActive(s.ctx, t))
	})
	s.clock.Advance(20 * time.Minute)

	dash, err := queries.NewGetDashboardQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetDashboardQuery())

	s.Require().NoError(err)
	s.Equal(1, dash.Today.Deliveries)
	s.InDelta(46.67*order.CommissionRate, dash.Today.Earnings, 1e-9)
	s.InDelta(dash.Today.Earnings, dash.Today.AveragePerDelivery, 1e-9)
	s.Equal(1, dash.AvailableOrders)
	s.Equal(2, dash.ActiveOrders)
	s.Equal(2, dash.UnreadNotifications)
	s.Equal(driver.Online, dash.Driver.Status)
	s.Require().NotNil(dash.ActiveTrip)
	s.Equal(20*time.Minute, dash.ActiveTrip.Duration)
}

func (s *QueriesTestSuite) TestEarningsOnAnotherDay() {
	s.login()
	s.clock.Advance(24 * time.Hour)
	s.login()

	earnings, err := queries.NewGetEarningsQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetEarningsQuery())

	s.Require().NoError(err)
	s.Zero(earnings.Deliveries)
	s.Zero(earnings.Earnings)
	s.Zero(earnings.AveragePerDelivery)
}

func (s *QueriesTestSuite) TestTrips() {
	s.login()
	current := queries.NewGetCurrentTripQueryHandler(s.factory, s.clock)
	history := queries.NewGetTripHistoryQueryHandler(s.factory, s.clock)

	none, err := current.Handle(s.ctx, queries.NewGetCurrentTripQuery())
	s.Require().NoError(err)
	s.Nil(none)

	s.write(func(uow ports.UnitOfWork) {
		for range 2 {
			t, err := trip.NewTrip(kernel.NewUUID(), s.location("Times Square"), s.clock.Now())
			s.Require().NoError(err)
			s.Require().NoError(t.RecordDistance(2))
			s.Require().NoError(t.End(s.location("Home"), s.clock.Now().Add(time.Hour)))
			s.Require().NoError(uow.TripRepository().Archive(s.ctx, t))
		}
	})

	trips, err := history.Handle(s.ctx, queries.NewGetTripHistoryQuery())
	s.Require().NoError(err)
	s.Len(trips, 2)
	for _, t := range trips {
		s.True(t.Ended)
		s.Equal(time.Hour, t.Duration)
		s.Require().NotNil(t.EndLocation)
		s.Equal("Home", t.EndLocation.Address())
	}
}

func (s *QueriesTestSuite) TestNotifications() {
	s.login()
	s.write(func(uow ports.UnitOfWork) {
		for _, title := range []string{"first", "second"} {
			n, err := notification.NewNotification(kernel.NewUUID(), title, "message", notification.Info, s.clock.Now())
			s.Require().NoError(err)
			if title == "first" {
				n.MarkRead()
			}
			s.Require().NoError(uow.NotificationRepository().Add(s.ctx, n))
		}
	})

	resp, err := queries.NewGetNotificationsQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetNotificationsQuery())

	s.Require().NoError(err)
	s.Require().Len(resp.Items, 2)
	s.Equal("second", resp.Items[0].Title)
	s.Equal(1, resp.Unread)
}

func (s *QueriesTestSuite) TestDriver() {
	s.login()

	resp, err := queries.NewGetDriverQueryHandler(s.factory, s.clock).Handle(s.ctx, queries.NewGetDriverQuery())

	s.Require().NoError(err)
	s.Equal("John Smith", resp.Name)
	s.Nil(resp.Location)
	s.Equal("car ABC-123", resp.Vehicle.String())
}
