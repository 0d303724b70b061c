package ports

import (
	"time"

	"porter/internal/core/domain/model/kernel"
)

// PasswordHasher turns secrets into stored hashes and checks them.
type PasswordHasher interface {
	// Hash returns the storable hash of password.
	Hash(password string) (string, error)

	// Compare returns account.ErrInvalidCredential if password does not match hash.
	Compare(hash string, password string) error
}

// TokenClaims is what a session token proves.
type TokenClaims struct {
	AccountID kernel.UUID
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenIssuer signs and verifies session tokens.
type TokenIssuer interface {
	// Issue signs a token for the account, valid from issuedAt for the issuer's TTL.
	Issue(accountID kernel.UUID, email string, issuedAt time.Time) (string, TokenClaims, error)

	// Verify checks the signature and expiry of token as of now.
	Verify(token string, now time.Time) (TokenClaims, error)
}

// Clock supplies the current time to use cases and jobs.
type Clock interface {
	Now() time.Time
}
