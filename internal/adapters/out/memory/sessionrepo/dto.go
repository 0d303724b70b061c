// Package sessionrepo keeps the single active session in the in-memory store.
package sessionrepo

import (
	"time"

	"porter/internal/adapters/out/memory/accountrepo"
	"porter/internal/core/domain/model/account"
)

// SessionDTO is the stored form of the active session.
// Account is the snapshot taken at login, not a reference to the account table.
type SessionDTO struct {
	Account   accountrepo.AccountDTO
	Token     string
	StartedAt time.Time
	ExpiresAt time.Time
}

func fromDomain(s *account.Session) SessionDTO {
	return SessionDTO{
		Account:   accountrepo.FromDomain(s.Account()),
		Token:     s.Token(),
		StartedAt: s.StartedAt(),
		ExpiresAt: s.ExpiresAt(),
	}
}

func toDomain(dto SessionDTO) (*account.Session, error) {
	acc, err := accountrepo.ToDomain(dto.Account)
	if err != nil {
		return nil, err
	}
	return account.RestoreSession(acc, dto.Token, dto.StartedAt, dto.ExpiresAt)
}
