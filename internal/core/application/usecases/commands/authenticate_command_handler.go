package commands

import (
	"context"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/ports"
)

// AuthenticateCommandHandler logs a driver in.
//
// The checks run in this order and the first failure is returned:
//   - *errs.ObjectNotFoundError when no account uses the email
//   - account.ErrInvalidCredential when the password does not match
//   - account.ErrNotApproved when the account is pending or suspended
//
// On success a signed token is issued and the new session replaces any
// previous one. A failed attempt leaves the current session untouched.
//
// Example:
//
//	cmd, _ := NewAuthenticateCommand("john.smith@porter.com", "password123")
//	session, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, account.ErrInvalidCredential):
//	    // wrong password
//	case errors.Is(err, account.ErrNotApproved):
//	    // waiting for approval
//	}
type AuthenticateCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	clock      ports.Clock
}

func NewAuthenticateCommandHandler(
	uowFactory AccountUoWFactory,
	hasher ports.PasswordHasher,
	tokens ports.TokenIssuer,
	clock ports.Clock,
) AuthenticateCommandHandler {
	return AuthenticateCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
		tokens:     tokens,
		clock:      clock,
	}
}

func (h *AuthenticateCommandHandler) Handle(ctx context.Context, cmd AuthenticateCommand) (*account.Session, error) {
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

	acc, err := uow.AccountRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		return nil, err
	}

	if err = h.hasher.Compare(acc.PasswordHash(), cmd.Password()); err != nil {
		return nil, err
	}

	if err = acc.CanAuthenticate(); err != nil {
		return nil, err
	}

	token, claims, err := h.tokens.Issue(acc.ID(), acc.Email(), h.clock.Now())
	if err != nil {
		return nil, err
	}

	session, err := account.NewSession(acc, token, claims.IssuedAt, claims.ExpiresAt)
	if err != nil {
		return nil, err
	}

	if err = uow.SessionRepository().Save(ctx, session); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return session, nil
}
