package security

import (
	"errors"
	"fmt"
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/ports"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "porter"

// ErrSecretIsRequired is returned when the issuer is built without a signing key.
var ErrSecretIsRequired = errors.New("token secret is required")

type claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// JWTIssuer implements ports.TokenIssuer with HS256-signed tokens.
// The subject is the account ID.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) (*JWTIssuer, error) {
	if secret == "" {
		return nil, ErrSecretIsRequired
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}, nil
}

func (i *JWTIssuer) Issue(accountID kernel.UUID, email string, issuedAt time.Time) (string, ports.TokenClaims, error) {
	// NumericDate keeps whole seconds; the returned claims match what Verify will read back.
	issuedAt = issuedAt.Truncate(time.Second)
	expiresAt := issuedAt.Add(i.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", ports.TokenClaims{}, fmt.Errorf("sign token: %w", err)
	}

	return signed, ports.TokenClaims{
		AccountID: accountID,
		Email:     email,
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// Verify checks the signature and the validity window against now.
// Every failure wraps account.ErrUnauthenticated.
func (i *JWTIssuer) Verify(token string, now time.Time) (ports.TokenClaims, error) {
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return i.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", account.ErrUnauthenticated, err)
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return ports.TokenClaims{}, fmt.Errorf("%w: invalid claims", account.ErrUnauthenticated)
	}

	accountID, err := kernel.UUIDFromString(c.Subject)
	if err != nil {
		return ports.TokenClaims{}, fmt.Errorf("%w: %w", account.ErrUnauthenticated, err)
	}

	return ports.TokenClaims{
		AccountID: accountID,
		Email:     c.Email,
		IssuedAt:  c.IssuedAt.Time,
		ExpiresAt: c.ExpiresAt.Time,
	}, nil
}
