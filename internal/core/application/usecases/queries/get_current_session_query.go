package queries

import (
	"context"
	"errors"

	"porter/internal/core/ports"
	"porter/internal/pkg/guard"
)

var ErrGetCurrentSessionQueryIsNotConstructed = errors.New(
	"GetCurrentSessionQuery must be created via NewGetCurrentSessionQuery constructor",
)

// GetCurrentSessionQuery asks who is logged in.
type GetCurrentSessionQuery struct {
	guard guard.ConstructorGuard
}

func NewGetCurrentSessionQuery() GetCurrentSessionQuery {
	return GetCurrentSessionQuery{guard: guard.NewConstructorGuard()}
}

func (q GetCurrentSessionQuery) Validate() error {
	return q.guard.Validate(ErrGetCurrentSessionQueryIsNotConstructed)
}

// GetCurrentSessionQueryHandler returns the live session, or
// account.ErrUnauthenticated when there is none or it has expired.
type GetCurrentSessionQueryHandler struct {
	uowFactory ports.UnitOfWorkFactory
	clock      ports.Clock
}

func NewGetCurrentSessionQueryHandler(uowFactory ports.UnitOfWorkFactory, clock ports.Clock) GetCurrentSessionQueryHandler {
	return GetCurrentSessionQueryHandler{uowFactory: uowFactory, clock: clock}
}

func (h GetCurrentSessionQueryHandler) Handle(ctx context.Context, query GetCurrentSessionQuery) (SessionResponse, error) {
	if err := query.Validate(); err != nil {
		return SessionResponse{}, err
	}

	return read(ctx, h.uowFactory, func(uow ports.UnitOfWork) (SessionResponse, error) {
		session, err := currentSession(ctx, uow.SessionRepository(), h.clock.Now())
		if err != nil {
			return SessionResponse{}, err
		}
		return toSessionResponse(session), nil
	})
}

// IsAuthenticated reports whether a live session exists.
func (h GetCurrentSessionQueryHandler) IsAuthenticated(ctx context.Context) bool {
	_, err := h.Handle(ctx, NewGetCurrentSessionQuery())
	return err == nil
}
