package triprepo

import (
	"context"
	"errors"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/trip"
	"porter/internal/pkg/errs"
)

// ErrTripIsActive is returned when an open trip is archived, or an ended trip is
// stored as active.
var ErrTripIsActive = errors.New("trip state does not match the slot")

// MemoryTripRepository implements ports.TripRepository.
type MemoryTripRepository struct {
	active  *table.Slot[TripDTO]
	history *table.Table[TripDTO]
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewMemoryTripRepository(
	active *table.Slot[TripDTO],
	history *table.Table[TripDTO],
	tracker aggregateTracker,
) *MemoryTripRepository {
	return &MemoryTripRepository{
		active:  active,
		history: history,
		tracker: tracker,
	}
}

// GetActive returns the open trip, or nil when there is none.
func (r *MemoryTripRepository) GetActive(ctx context.Context) (*trip.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dto, ok := r.active.Get()
	if !ok {
		return nil, nil //nolint:nilnil // an empty slot is not an error
	}

	return toDomain(dto)
}

// SaveActive stores an open trip in the active slot.
func (r *MemoryTripRepository) SaveActive(ctx context.Context, t *trip.Trip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if t.IsEnded() {
		return errs.NewValueIsInvalidErrorWithCause("trip", ErrTripIsActive)
	}

	r.active.Set(fromDomain(t))
	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// Archive prepends an ended trip to history and clears the active slot.
func (r *MemoryTripRepository) Archive(ctx context.Context, t *trip.Trip) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if !t.IsEnded() {
		return errs.NewValueIsInvalidErrorWithCause("trip", ErrTripIsActive)
	}

	if err := r.history.Prepend(t.ID().String(), fromDomain(t)); err != nil {
		if errors.Is(err, table.ErrKeyExists) {
			return errs.NewObjectAlreadyExistsErrorWithCause("trip", t.ID().String(), err)
		}
		return err
	}

	if dto, ok := r.active.Get(); ok && dto.ID == t.ID().Bytes() {
		r.active.Clear()
	}

	r.tracker.TrackAggregate(t.ID(), t)
	return nil
}

// History returns ended trips, most recent first.
func (r *MemoryTripRepository) History(ctx context.Context) ([]*trip.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dtos := r.history.All()
	trips := make([]*trip.Trip, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}

	return trips, nil
}
