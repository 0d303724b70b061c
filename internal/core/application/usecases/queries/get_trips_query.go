package queries

import (
	"context"
	"errors"
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
	"porter/internal/pkg/guard"
)

var (
	ErrGetCurrentTripQueryIsNotConstructed = errors.New(
		"GetCurrentTripQuery must be created via NewGetCurrentTripQuery constructor",
	)
	ErrGetTripHistoryQueryIsNotConstructed = errors.New(
		"GetTripHistoryQuery must be created via NewGetTripHistoryQuery constructor",
	)
)

type GetCurrentTripQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentTripQuery() GetCurrentTripQuery {
	return GetCurrentTripQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCurrentTripQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentTripQueryIsNotConstructed)
}

// GetCurrentTripQueryHandler returns the open trip, or nil when none is open.
type GetCurrentTripQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetCurrentTripQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetCurrentTripQueryHandler {
	return GetCurrentTripQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetCurrentTripQueryHandler) Handle(ctx context.Context, query GetCurrentTripQuery) (*TripResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return readAuthenticated(ctx, h.uowFactory, now,
		func(uow ports.UnitOfWork, _ *account.Session) (*TripResponse, error) {
			return activeTrip(ctx, uow.TripRepository(), now)
		})
}

type GetTripHistoryQuery struct {
	guard guard.ConstructorGuard
}

func NewGetTripHistoryQuery() GetTripHistoryQuery {
	return GetTripHistoryQuery{guard: guard.NewConstructorGuard()}
}

func (q GetTripHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetTripHistoryQueryIsNotConstructed)
}

// GetTripHistoryQueryHandler lists ended trips, most recent first.
type GetTripHistoryQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetTripHistoryQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetTripHistoryQueryHandler {
	return GetTripHistoryQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetTripHistoryQueryHandler) Handle(ctx context.Context, query GetTripHistoryQuery) ([]TripResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	now := h.clock.Now()
	return readAuthenticated(ctx, h.uowFactory, now,
		func(uow ports.UnitOfWork, _ *account.Session) ([]TripResponse, error) {
			history, err := uow.TripRepository().History(ctx)
			if err != nil {
				return nil, err
			}

			trips := make([]TripResponse, 0, len(history))
			for _, t := range history {
				trips = append(trips, toTripResponse(t, now))
			}
			return trips, nil
		})
}

func activeTrip(ctx context.Context, trips ports.TripRepository, now time.Time) (*TripResponse, error) {
	t, err := trips.GetActive(ctx)
	if err != nil || t == nil {
		return nil, err
	}
	resp := toTripResponse(t, now)
	return &resp, nil
}
