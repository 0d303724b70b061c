package security_test

import (
	"strings"
	"testing"
	"time"

	"porter/internal/adapters/out/security"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher(t *testing.T) {
	hasher := security.NewBcryptHasher(bcrypt.MinCost)

	t.Run("should accept the original password", func(t *testing.T) {
		hash, err := hasher.Hash("password123")

		require.NoError(t, err)
		assert.NotEqual(t, "password123", hash)
		require.NoError(t, hasher.Compare(hash, "password123"))
	})

	t.Run("should reject a different password", func(t *testing.T) {
		hash, err := hasher.Hash("password123")
		require.NoError(t, err)

		require.ErrorIs(t, hasher.Compare(hash, "password124"), account.ErrInvalidCredential)
	})

	t.Run("should treat a malformed hash as an invalid credential", func(t *testing.T) {
		require.ErrorIs(t, hasher.Compare("not-a-hash", "password123"), account.ErrInvalidCredential)
	})

	t.Run("should fall back to the default cost", func(t *testing.T) {
		hash, err := security.NewBcryptHasher(0).Hash("password123")
		require.NoError(t, err)

		cost, err := bcrypt.Cost([]byte(hash))
		require.NoError(t, err)
		assert.Equal(t, bcrypt.DefaultCost, cost)
	})
}

func TestJWTIssuer(t *testing.T) {
	issuedAt := time.Date(2026, 3, 2, 9, 0, 0, 500, time.UTC)
	accountID := kernel.NewUUID()

	issuer, err := security.NewJWTIssuer("secret", 12*time.Hour)
	require.NoError(t, err)

	t.Run("should round trip the claims", func(t *testing.T) {
		token, issued, err := issuer.Issue(accountID, "john.smith@porter.com", issuedAt)
		require.NoError(t, err)
		assert.Len(t, strings.Split(token, "."), 3)
		assert.Equal(t, issuedAt.Truncate(time.Second).Add(12*time.Hour), issued.ExpiresAt)

		verified, err := issuer.Verify(token, issuedAt.Add(time.Hour))

		require.NoError(t, err)
		assert.True(t, verified.AccountID.IsEqual(accountID))
		assert.Equal(t, "john.smith@porter.com", verified.Email)
		assert.True(t, verified.ExpiresAt.Equal(issued.ExpiresAt))
	})

	t.Run("should reject an expired token", func(t *testing.T) {
		token, _, err := issuer.Issue(accountID, "john.smith@porter.com", issuedAt)
		require.NoError(t, err)

		_, err = issuer.Verify(token, issuedAt.Add(13*time.Hour))

		require.ErrorIs(t, err, account.ErrUnauthenticated)
	})

	t.Run("should reject a token signed with another secret", func(t *testing.T) {
		other, err := security.NewJWTIssuer("other", time.Hour)
		require.NoError(t, err)
		token, _, err := other.Issue(accountID, "john.smith@porter.com", issuedAt)
		require.NoError(t, err)

		_, err = issuer.Verify(token, issuedAt)

		require.ErrorIs(t, err, account.ErrUnauthenticated)
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := issuer.Verify("garbage", issuedAt)

		require.ErrorIs(t, err, account.ErrUnauthenticated)
	})

	t.Run("should require a secret and a positive ttl", func(t *testing.T) {
		_, err := security.NewJWTIssuer("", time.Hour)
		require.ErrorIs(t, err, security.ErrSecretIsRequired)

		_, err = security.NewJWTIssuer("secret", 0)
		require.Error(t, err)
	})
}
