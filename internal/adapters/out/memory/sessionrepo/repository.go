package sessionrepo

import (
	"context"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/kernel"
)

// MemorySessionRepository implements ports.SessionRepository over a store slot.
type MemorySessionRepository struct {
	slot    *table.Slot[SessionDTO]
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewMemorySessionRepository(slot *table.Slot[SessionDTO], tracker aggregateTracker) *MemorySessionRepository {
	return &MemorySessionRepository{
		slot:    slot,
		tracker: tracker,
	}
}

// Get returns the active session or account.ErrUnauthenticated.
func (r *MemorySessionRepository) Get(ctx context.Context) (*account.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dto, ok := r.slot.Get()
	if !ok {
		return nil, account.ErrUnauthenticated
	}

	return toDomain(dto)
}

// Save replaces the active session.
func (r *MemorySessionRepository) Save(ctx context.Context, s *account.Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}

	r.slot.Set(fromDomain(s))
	r.tracker.TrackAggregate(s.Account().ID(), s)
	return nil
}

// Clear empties the slot. It is idempotent.
func (r *MemorySessionRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.slot.Clear()
	return nil
}
