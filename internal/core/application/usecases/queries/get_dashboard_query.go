package queries

import (
	"context"
	"errors"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/services"
	"porter/internal/core/ports"
	"porter/internal/pkg/guard"
)

var (
	ErrGetDashboardQueryIsNotConstructed = errors.New(
		"GetDashboardQuery must be created via NewGetDashboardQuery constructor",
	)
	ErrGetEarningsQueryIsNotConstructed = errors.New(
		"GetEarningsQuery must be created via NewGetEarningsQuery constructor",
	)
)

// GetEarningsQuery asks for today's earnings, delivery count and average.
type GetEarningsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetEarningsQuery() GetEarningsQuery {
	return GetEarningsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetEarningsQuery) Validate() error {
	return q.guard.Validate(ErrGetEarningsQueryIsNotConstructed)
}

// GetEarningsQueryHandler derives today's figures from the ledger.
// "Today" is the calendar day of the clock in its own location.
type GetEarningsQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	calculator services.EarningsCalculator
}

func NewGetEarningsQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetEarningsQueryHandler {
	return GetEarningsQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewEarningsCalculator(),
	}
}

func (h GetEarningsQueryHandler) Handle(ctx context.Context, query GetEarningsQuery) (EarningsResponse, error) {
	if err := query.Validate(); err != nil {
		return EarningsResponse{}, err
	}

	now := h.clock.Now()
	return readAuthenticated(ctx, h.uowFactory, now,
		func(uow ports.UnitOfWork, _ *account.Session) (EarningsResponse, error) {
			orders, err := uow.OrderRepository().GetAll(ctx)
			if err != nil {
				return EarningsResponse{}, err
			}
			return toEarningsResponse(h.calculator.Summarize(orders, now)), nil
		})
}

// GetDashboardQuery asks for the home screen figures.
type GetDashboardQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDashboardQuery() GetDashboardQuery {
	return GetDashboardQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDashboardQuery) Validate() error {
	return q.guard.Validate(ErrGetDashboardQueryIsNotConstructed)
}

// GetDashboardQueryResponse is the home screen of the driver.
// ActiveTrip is nil when no trip is open.
type GetDashboardQueryResponse struct {
	Today               EarningsResponse
	Driver              DriverResponse
	AvailableOrders     int
	ActiveOrders        int
	UnreadNotifications int
	ActiveTrip          *TripResponse
}

// GetDashboardQueryHandler aggregates the ledger, the driver record, the
// notification queue and the trip tracker in one consistent read.
//
// Example:
//
//	handler := NewGetDashboardQueryHandler(uowFactory, clock)
//	dash, err := handler.Handle(ctx, NewGetDashboardQuery())
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Today: $%.2f over %d deliveries\n", dash.Today.Earnings, dash.Today.Deliveries)
type GetDashboardQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
	calculator services.EarningsCalculator
}

func NewGetDashboardQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetDashboardQueryHandler {
	return GetDashboardQueryHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewEarningsCalculator(),
	}
}

func (h GetDashboardQueryHandler) Handle(ctx context.Context, query GetDashboardQuery) (GetDashboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDashboardQueryResponse{}, err
	}

	now := h.clock.Now()
	return readAuthenticated(ctx, h.uowFactory, now,
		func(uow ports.UnitOfWork, session *account.Session) (GetDashboardQueryResponse, error) {
			d, err := uow.DriverRepository().Get(ctx, session.Account().ID())
			if err != nil {
				return GetDashboardQueryResponse{}, err
			}

			orders, err := uow.OrderRepository().GetAll(ctx)
			if err != nil {
				return GetDashboardQueryResponse{}, err
			}

			notifications, err := uow.NotificationRepository().GetAll(ctx)
			if err != nil {
				return GetDashboardQueryResponse{}, err
			}

			trip, err := activeTrip(ctx, uow.TripRepository(), now)
			if err != nil {
				return GetDashboardQueryResponse{}, err
			}

			resp := GetDashboardQueryResponse{
				Today:               toEarningsResponse(h.calculator.Summarize(orders, now)),
				Driver:              toDriverResponse(d),
				UnreadNotifications: unreadCount(notifications),
				ActiveTrip:          trip,
			}
			for _, o := range orders {
				switch {
				case o.Status() == order.Available:
					resp.AvailableOrders++
				case o.Status().IsActive():
					resp.ActiveOrders++
				}
			}
			return resp, nil
		})
}
