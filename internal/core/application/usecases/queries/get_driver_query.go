package queries

import (
	"context"
	"errors"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
	"porter/internal/pkg/guard"
)

var ErrGetDriverQueryIsNotConstructed = errors.New(
	"GetDriverQuery must be created via NewGetDriverQuery constructor",
)

// GetDriverQuery reads the driver record of the logged-in account.
type GetDriverQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDriverQuery() GetDriverQuery {
	return GetDriverQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

type GetDriverQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetDriverQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetDriverQueryHandler {
	return GetDriverQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	return readAuthenticated(ctx, h.uowFactory, h.clock.Now(),
		func(uow ports.UnitOfWork, session *account.Session) (DriverResponse, error) {
			d, err := uow.DriverRepository().Get(ctx, session.Account().ID())
			if err != nil {
				return DriverResponse{}, err
			}
			return toDriverResponse(d), nil
		})
}
