package commands_test

import (
	"errors"
	"testing"
	"time"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/ports"
	"porter/internal/pkg/clock"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStoredAccount(t *testing.T, approved bool) *account.Account {
	t.Helper()
	vehicle, err := kernel.NewVehicle("Car", "ABC-123")
	require.NoError(t, err)
	acc, err := account.NewAccount(
		kernel.NewUUID(), "John Smith", "john.smith@porter.com", "+1 (555) 123-4567", vehicle, "DL123456789", "hashed", signupTime,
	)
	require.NoError(t, err)
	if approved {
		require.NoError(t, acc.Approve())
	}
	return acc
}

func TestNewAuthenticateCommand(t *testing.T) {
	t.Run("should require both fields", func(t *testing.T) {
		_, err := commands.NewAuthenticateCommand(" ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "email")
		assert.Contains(t, err.Error(), "password")
	})
}

func TestAuthenticateCommandHandler_Handle(t *testing.T) {
	now := signupTime.Add(time.Hour)

	setup := func(t *testing.T, acc *account.Account, lookupErr error) (*MockAccountUoWFactory, *MockAccountUoW, *MockAccountRepository, *MockSessionRepository) {
		t.Helper()
		ctx := t.Context()

		accounts := new(MockAccountRepository)
		accounts.On("GetByEmail", ctx, "john.smith@porter.com").Return(acc, lookupErr).Once()

		sessions := new(MockSessionRepository)
		uow := new(MockAccountUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("AccountRepository").Return(accounts).Once()
		uow.On("SessionRepository").Return(sessions).Maybe()
		uow.On("Commit", ctx).Return(nil).Maybe()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()
		return factory, uow, accounts, sessions
	}

	t.Run("should open a session for an approved account", func(t *testing.T) {
		ctx := t.Context()
		acc := newStoredAccount(t, true)
		factory, uow, _, sessions := setup(t, acc, nil)

		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "hashed", "password123").Return(nil).Once()

		claims := ports.TokenClaims{AccountID: acc.ID(), Email: acc.Email(), IssuedAt: now, ExpiresAt: now.Add(12 * time.Hour)}
		tokens := new(MockTokenIssuer)
		tokens.On("Issue", acc.ID(), acc.Email(), now).Return("signed", claims, nil).Once()

		sessions.On("Save", ctx, mock.MatchedBy(func(s *account.Session) bool {
			return s.Token() == "signed" && s.Account().ID().IsEqual(acc.ID())
		})).Return(nil).Once()

		cmd, err := commands.NewAuthenticateCommand("john.smith@porter.com", "password123")
		require.NoError(t, err)

		h := commands.NewAuthenticateCommandHandler(factory, hasher, tokens, clock.NewManual(now))
		session, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "signed", session.Token())
		assert.Equal(t, claims.ExpiresAt, session.ExpiresAt())
		uow.AssertCalled(t, "Commit", ctx)
		sessions.AssertExpectations(t)
		tokens.AssertExpectations(t)
	})

	t.Run("should reject a wrong password and keep the current session", func(t *testing.T) {
		ctx := t.Context()
		acc := newStoredAccount(t, true)
		factory, uow, _, sessions := setup(t, acc, nil)

		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "hashed", "wrong-password").Return(account.ErrInvalidCredential).Once()
		tokens := new(MockTokenIssuer)

		cmd, err := commands.NewAuthenticateCommand("john.smith@porter.com", "wrong-password")
		require.NoError(t, err)

		h := commands.NewAuthenticateCommandHandler(factory, hasher, tokens, clock.NewManual(now))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, account.ErrInvalidCredential)
		tokens.AssertNotCalled(t, "Issue", mock.Anything, mock.Anything, mock.Anything)
		sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		uow.AssertNotCalled(t, "Commit", ctx)
	})

	t.Run("should refuse an account that is not approved", func(t *testing.T) {
		ctx := t.Context()
		acc := newStoredAccount(t, false)
		factory, _, _, sessions := setup(t, acc, nil)

		hasher := new(MockPasswordHasher)
		hasher.On("Compare", "hashed", "password123").Return(nil).Once()

		cmd, err := commands.NewAuthenticateCommand("john.smith@porter.com", "password123")
		require.NoError(t, err)

		h := commands.NewAuthenticateCommandHandler(factory, hasher, new(MockTokenIssuer), clock.NewManual(now))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, account.ErrNotApproved)
		assert.Contains(t, err.Error(), "pending")
		sessions.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should report an unknown email", func(t *testing.T) {
		ctx := t.Context()
		notFound := errs.NewObjectNotFoundError("email", "john.smith@porter.com")
		factory, _, _, _ := setup(t, nil, notFound)

		hasher := new(MockPasswordHasher)
		cmd, err := commands.NewAuthenticateCommand("john.smith@porter.com", "password123")
		require.NoError(t, err)

		h := commands.NewAuthenticateCommandHandler(factory, hasher, new(MockTokenIssuer), clock.NewManual(now))
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		hasher.AssertNotCalled(t, "Compare", mock.Anything, mock.Anything)
	})

	t.Run("should surface a begin failure", func(t *testing.T) {
		ctx := t.Context()
		beginErr := errors.New("begin transaction failed")

		uow := new(MockAccountUoW)
		uow.On("Begin", ctx).Return(beginErr).Once()
		factory := new(MockAccountUoWFactory)
		factory.On("Create").Return(uow).Once()

		cmd, err := commands.NewAuthenticateCommand("john.smith@porter.com", "password123")
		require.NoError(t, err)

		h := commands.NewAuthenticateCommandHandler(factory, new(MockPasswordHasher), new(MockTokenIssuer), clock.NewManual(now))
		_, err = h.Handle(ctx, cmd)

		assert.Equal(t, beginErr, err)
		uow.AssertExpectations(t)
	})
}
