package commands

import (
	"context"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
)

// UpdateProfileCommandHandler merges a profile edit into the account, the
// driver record and the session snapshot in one transaction.
// Returns account.ErrUnauthenticated when nobody is logged in.
type UpdateProfileCommandHandler struct {
	uowFactory AccountUoWFactory
	clock      ports.Clock
}

func NewUpdateProfileCommandHandler(uowFactory AccountUoWFactory, clock ports.Clock) UpdateProfileCommandHandler {
	return UpdateProfileCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateProfileCommandHandler) Handle(ctx context.Context, cmd UpdateProfileCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	sessions := uow.SessionRepository()
	session, err := activeSession(ctx, sessions, h.clock.Now())
	if err != nil {
		return nil, err
	}

	accounts := uow.AccountRepository()
	acc, err := accounts.Get(ctx, session.Account().ID())
	if err != nil {
		return nil, err
	}

	if err = acc.Apply(cmd.Update()); err != nil {
		return nil, err
	}

	if err = accounts.Update(ctx, acc); err != nil {
		return nil, err
	}

	drivers := uow.DriverRepository()
	d, err := drivers.Get(ctx, acc.ID())
	if err != nil {
		return nil, err
	}

	if err = d.UpdateContact(acc.Name(), acc.Phone(), acc.Vehicle()); err != nil {
		return nil, err
	}

	if err = drivers.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = session.Refresh(acc); err != nil {
		return nil, err
	}

	if err = sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acc, nil
}
