// Package queries contains read-only operations over the driver core.
// Implements the Query side of CQRS: handlers open a unit of work, read the
// aggregates they need, map them to response structs and roll back.
// Nothing here mutates state.
package queries

import (
	"context"
	"fmt"
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
)

// read runs fn inside a unit of work that is always rolled back.
func read[T any](
	ctx context.Context,
	uowFactory ports.UnitOfWorkFactory,
	fn func(uow ports.UnitOfWork) (T, error),
) (T, error) {
	var zero T

	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return zero, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	return fn(uow)
}

// readAuthenticated is read behind the session gate.
func readAuthenticated[T any](
	ctx context.Context,
	uowFactory ports.UnitOfWorkFactory,
	now time.Time,
	fn func(uow ports.UnitOfWork, session *account.Session) (T, error),
) (T, error) {
	return read(ctx, uowFactory, func(uow ports.UnitOfWork) (T, error) {
		session, err := currentSession(ctx, uow.SessionRepository(), now)
		if err != nil {
			var zero T
			return zero, err
		}
		return fn(uow, session)
	})
}

func currentSession(ctx context.Context, sessions ports.SessionRepository, now time.Time) (*account.Session, error) {
	session, err := sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(now) {
		return nil, fmt.Errorf("%w: session expired at %s", account.ErrUnauthenticated, session.ExpiresAt().Format(time.RFC3339))
	}
	return session, nil
}
