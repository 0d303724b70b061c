package orderrepo

import (
	"context"
	"errors"

	"porter/internal/adapters/out/memory/table"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/errs"
)

// MemoryOrderRepository implements ports.OrderRepository over a store table.
type MemoryOrderRepository struct {
	rows    *table.Table[OrderDTO]
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewMemoryOrderRepository creates a repository over rows.
func NewMemoryOrderRepository(rows *table.Table[OrderDTO], tracker aggregateTracker) *MemoryOrderRepository {
	return &MemoryOrderRepository{
		rows:    rows,
		tracker: tracker,
	}
}

// Add appends a new order to the ledger.
func (r *MemoryOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.rows.Append(aggregate.ID().String(), dto); err != nil {
		if errors.Is(err, table.ErrKeyExists) {
			return errs.NewObjectAlreadyExistsErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order.
func (r *MemoryOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.rows.Replace(aggregate.ID().String(), dto); err != nil {
		if errors.Is(err, table.ErrKeyNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *MemoryOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := id.Validate(); err != nil {
		return nil, err
	}

	dto, ok := r.rows.Get(id.String())
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}

	return toDomain(dto)
}

// GetAll returns every order in insertion order.
func (r *MemoryOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dtos := r.rows.All()
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
