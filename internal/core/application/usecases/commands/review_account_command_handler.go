package commands

import (
	"context"
	"errors"

	"porter/internal/core/domain/model/account"
)

// ReviewAccountCommandHandler applies an approval decision to the account
// registered under an email. Suspending the account that is logged in also
// ends its session.
//
// Errors:
//   - *errs.ObjectNotFoundError when no account uses the email
//   - *errs.IllegalTransitionError when the account is not in a state the decision applies to
type ReviewAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

func NewReviewAccountCommandHandler(uowFactory AccountUoWFactory) ReviewAccountCommandHandler {
	return ReviewAccountCommandHandler{uowFactory: uowFactory}
}

func (h *ReviewAccountCommandHandler) Handle(ctx context.Context, cmd ReviewAccountCommand) (*account.Account, error) {
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

	accounts := uow.AccountRepository()
	acc, err := accounts.GetByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}

	if cmd.Decision() == account.Suspended {
		err = acc.Suspend()
	} else {
		err = acc.Approve()
	}
	if err != nil {
		return nil, err
	}

	if err = accounts.Update(ctx, acc); err != nil {
		return nil, err
	}

	if acc.Status() == account.Suspended {
		if err = h.endSessionOf(ctx, uow, acc); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return acc.Clone(), nil
}

func (h *ReviewAccountCommandHandler) endSessionOf(ctx context.Context, uow AccountUoW, acc *account.Account) error {
	sessions := uow.SessionRepository()
	session, err := sessions.Get(ctx)
	if errors.Is(err, account.ErrUnauthenticated) {
		return nil
	}
	if err != nil {
		return err
	}

	if !session.Account().ID().IsEqual(acc.ID()) {
		return nil
	}
	return sessions.Clear(ctx)
}
