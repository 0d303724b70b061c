package ports

import (
	"context"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"
)

// AccountRepository defines the storage contract for the identity store.
type AccountRepository interface {
	// Add stores a new account.
	// Returns *errs.ObjectAlreadyExistsError if the email is already registered.
	Add(ctx context.Context, aggregate *account.Account) error

	// Update replaces the stored state of an existing account.
	Update(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByEmail retrieves an account by login email, compared case-insensitively.
	// Returns *errs.ObjectNotFoundError if no account uses the email.
	GetByEmail(ctx context.Context, email string) (*account.Account, error)
}

// SessionRepository holds the single active session of the process.
type SessionRepository interface {
	// Get returns the active session.
	// Returns account.ErrUnauthenticated if nobody is logged in.
	Get(ctx context.Context) (*account.Session, error)

	// Save stores s as the active session, replacing any previous one.
	Save(ctx context.Context, s *account.Session) error

	// Clear removes the active session. Clearing an empty slot is not an error.
	Clear(ctx context.Context) error
}
