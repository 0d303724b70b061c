package commands

import (
	"context"
	"fmt"
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/ports"
)

// activeSession returns the logged-in session.
// An expired session counts as no session.
func activeSession(ctx context.Context, sessions ports.SessionRepository, now time.Time) (*account.Session, error) {
	session, err := sessions.Get(ctx)
	if err != nil {
		return nil, err
	}
	if session.IsExpired(now) {
		return nil, fmt.Errorf("%w: session expired at %s", account.ErrUnauthenticated, session.ExpiresAt().Format(time.RFC3339))
	}
	return session, nil
}

// sessionDriver returns the driver record of the logged-in account.
func sessionDriver(
	ctx context.Context,
	sessions ports.SessionRepository,
	drivers ports.DriverRepository,
	now time.Time,
) (*driver.Driver, error) {
	session, err := activeSession(ctx, sessions, now)
	if err != nil {
		return nil, err
	}
	return drivers.Get(ctx, session.Account().ID())
}
