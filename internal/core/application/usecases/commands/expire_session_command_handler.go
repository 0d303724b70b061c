package commands

import (
	"context"
	"errors"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
)

// ExpireSessionCommandHandler verifies the session token against the clock and
// clears the session when verification fails.
type ExpireSessionCommandHandler struct {
	uowFactory SessionUoWFactory
	tokens     ports.TokenIssuer
	clock      ports.Clock
}

func NewExpireSessionCommandHandler(
	uowFactory SessionUoWFactory,
	tokens ports.TokenIssuer,
	clock ports.Clock,
) ExpireSessionCommandHandler {
	return ExpireSessionCommandHandler{
		uowFactory: uowFactory,
		tokens:     tokens,
		clock:      clock,
	}
}

// Handle returns true when a session was dropped.
func (h *ExpireSessionCommandHandler) Handle(ctx context.Context, cmd ExpireSessionCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	session, err := sessions.Get(ctx)
	if errors.Is(err, account.ErrUnauthenticated) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if _, err = h.tokens.Verify(session.Token(), h.clock.Now()); err == nil {
		return false, nil
	}

	if err = sessions.Clear(ctx); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
