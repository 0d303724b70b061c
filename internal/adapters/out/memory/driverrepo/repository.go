package driverrepo

import (
	"context"
	"errors"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

// MemoryDriverRepository implements ports.DriverRepository over a store table.
type MemoryDriverRepository struct {
	rows    *table.Table[DriverDTO]
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewMemoryDriverRepository(rows *table.Table[DriverDTO], tracker aggregateTracker) *MemoryDriverRepository {
	return &MemoryDriverRepository{
		rows:    rows,
		tracker: tracker,
	}
}

func (r *MemoryDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.rows.Append(aggregate.ID().String(), fromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyExists) {
			return errs.NewObjectAlreadyExistsErrorWithCause("driver", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if err := r.rows.Replace(aggregate.ID().String(), fromDomain(aggregate)); err != nil {
		if errors.Is(err, table.ErrKeyNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("driver", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *MemoryDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.rows.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("driver", id.String())
	}

	return toDomain(dto)
}
