package account

import (
	"errors"
	"strings"
	"time"

	"porter/internal/pkg/errs"
)

// ErrSessionIsNotConstructed is returned when using an improperly initialized Session.
var ErrSessionIsNotConstructed = errors.New("Session must be created via NewSession constructor")

// Session is the single authenticated identity of the running process.
// It keeps a snapshot of the account taken at login and refreshed on profile edits,
// together with the signed token issued for it.
type Session struct {
	account   *Account
	token     string
	startedAt time.Time
	expiresAt time.Time

	isConstructed bool
}

// NewSession opens a session for an approved account.
//
// Returns:
//   - *Session: the session holding its own copy of the account
//   - error: ErrNotApproved for accounts that cannot log in, validation errors otherwise
func NewSession(acc *Account, token string, startedAt time.Time, expiresAt time.Time) (*Session, error) {
	if err := acc.Validate(); err != nil {
		return nil, err
	}
	if err := acc.CanAuthenticate(); err != nil {
		return nil, err
	}
	return RestoreSession(acc, token, startedAt, expiresAt)
}

// RestoreSession rebuilds a session from stored state without re-checking approval.
func RestoreSession(acc *Account, token string, startedAt time.Time, expiresAt time.Time) (*Session, error) {
	if err := acc.Validate(); err != nil {
		return nil, err
	}

	var tokenErr, startErr, expiryErr error
	if strings.TrimSpace(token) == "" {
		tokenErr = errs.NewValueIsRequiredError("token")
	}
	if startedAt.IsZero() {
		startErr = errs.NewValueIsRequiredError("startedAt")
	}
	if expiresAt.Before(startedAt) {
		expiryErr = errs.NewValueIsOutOfRangeError("expiresAt", expiresAt, startedAt, "unbounded")
	}
	if err := errors.Join(tokenErr, startErr, expiryErr); err != nil {
		return nil, err
	}

	return &Session{
		account:       acc.Clone(),
		token:         token,
		startedAt:     startedAt,
		expiresAt:     expiresAt,
		isConstructed: true,
	}, nil
}

func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// Account returns a copy of the account snapshot.
func (s *Session) Account() *Account {
	return s.account.Clone()
}

func (s *Session) Token() string {
	return s.token
}

func (s *Session) StartedAt() time.Time {
	return s.startedAt
}

func (s *Session) ExpiresAt() time.Time {
	return s.expiresAt
}

// IsExpired reports whether now is at or past the expiry.
func (s *Session) IsExpired(now time.Time) bool {
	return !now.Before(s.expiresAt)
}

// Refresh replaces the snapshot after the account was edited.
// The account must be the one the session was opened for.
func (s *Session) Refresh(acc *Account) error {
	if err := acc.Validate(); err != nil {
		return err
	}
	if !acc.ID().IsEqual(s.account.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("account", errors.New("session belongs to another account"))
	}
	s.account = acc.Clone()
	return nil
}
