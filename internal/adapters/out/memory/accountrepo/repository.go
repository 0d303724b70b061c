package accountrepo

import (
	"context"
	"errors"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

// MemoryAccountRepository implements ports.AccountRepository over a store table.
// Emails are unique; the check scans the table, which holds a handful of rows.
type MemoryAccountRepository struct {
	rows    *table.Table[AccountDTO]
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewMemoryAccountRepository(rows *table.Table[AccountDTO], tracker aggregateTracker) *MemoryAccountRepository {
	return &MemoryAccountRepository{
		rows:    rows,
		tracker: tracker,
	}
}

// Add registers a new account. The email must not be in use.
func (r *MemoryAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if _, taken := r.findByEmail(aggregate.Email()); taken {
		return errs.NewObjectAlreadyExistsError("email", aggregate.Email())
	}

	if err := r.rows.Append(aggregate.ID().String(), FromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyExists) {
			return errs.NewObjectAlreadyExistsErrorWithCause("account", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing account. The email is the login key and must not
// collide with another account's.
func (r *MemoryAccountRepository) Update(ctx context.Context, aggregate *account.Account) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if other, taken := r.findByEmail(aggregate.Email()); taken && other.ID != aggregate.ID().Bytes() {
		return errs.NewObjectAlreadyExistsError("email", aggregate.Email())
	}

	if err := r.rows.Replace(aggregate.ID().String(), FromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("account", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.rows.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("account", id.String())
	}

	return ToDomain(dto)
}

// GetByEmail looks an account up by login email, ignoring case and surrounding spaces.
func (r *MemoryAccountRepository) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dto, ok := r.findByEmail(email)
	if !ok {
		return nil, errs.NewObjectNotFoundError("email", account.NormalizeEmail(email))
	}

	return ToDomain(dto)
}

func (r *MemoryAccountRepository) findByEmail(email string) (AccountDTO, bool) {
	normalized := account.NormalizeEmail(email)
	return r.rows.Find(func(dto AccountDTO) bool {
		return dto.Email == normalized
	})
}
