// Package memory provides the in-memory implementation of the Unit of Work
// pattern over a Store.
//
// A unit of work takes the store's mutex in Begin and releases it in Commit or
// Rollback, so business transactions run one at a time. Begin also snapshots
// the state; Rollback puts the snapshot back, which makes every command
// all-or-nothing.
//
// Usage:
//
//	factory := memory.NewUnitOfWorkFactory(store)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	if err := uow.DriverRepository().Update(ctx, d); err != nil {
//	    return err // the order update is discarded too
//	}
//
//	return uow.Commit(ctx)
//
// Units of work must not be nested: a second Begin on the same store from the
// same goroutine blocks forever.
package memory

import (
	"context"
	"errors"
	"log/slog"

	"porter/internal/adapters/out/memory/accountrepo"
	"porter/internal/adapters/out/memory/driverrepo"
	"porter/internal/adapters/out/memory/notificationrepo"
	"porter/internal/adapters/out/memory/orderrepo"
	"porter/internal/adapters/out/memory/sessionrepo"
	"porter/internal/adapters/out/memory/triprepo"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/ports"
)

// ErrInvalidTransaction is returned by Commit and Rollback without a Begin.
var ErrInvalidTransaction = errors.New("invalid transaction")

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// UnitOfWorkFactory creates units of work bound to one Store.
type UnitOfWorkFactory struct {
	store  *Store
	logger *slog.Logger
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// WithLogger makes every unit of work log the aggregates it committed at debug level.
func (f *UnitOfWorkFactory) WithLogger(logger *slog.Logger) *UnitOfWorkFactory {
	f.logger = logger.With("component", "unit_of_work")
	return f
}

// Create produces a new unit of work. Nothing is locked until Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return f.CreateUnitOfWork()
}

// CreateUnitOfWork is Create returning the concrete type.
func (f *UnitOfWorkFactory) CreateUnitOfWork() *UnitOfWork {
	return &UnitOfWork{
		store:             f.store,
		logger:            f.logger,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// UnitOfWork scopes repository access to one business transaction.
type UnitOfWork struct {
	store             *Store
	logger            *slog.Logger
	snapshot          *state
	active            bool
	trackedAggregates []trackedAggregate
}

// Begin locks the store and snapshots its state.
// Calling Begin again on an active unit of work does nothing.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.active {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	uow.store.mu.Lock()
	uow.snapshot = uow.store.state.clone()
	uow.active = true
	return nil
}

// Commit keeps the changes and unlocks the store.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	written := uow.TrackedIDs()
	uow.snapshot = nil
	uow.active = false
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.store.mu.Unlock()

	if uow.logger != nil && len(written) > 0 {
		ids := make([]string, 0, len(written))
		for _, id := range written {
			ids = append(ids, id.String())
		}
		uow.logger.DebugContext(ctx, "Transaction committed", "aggregates", ids)
	}
	return nil
}

// Rollback restores the snapshot taken at Begin and unlocks the store.
// After a Commit it returns ErrInvalidTransaction and changes nothing, so it is
// safe to defer.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if !uow.active {
		return ErrInvalidTransaction
	}

	uow.store.state = uow.snapshot
	uow.snapshot = nil
	uow.active = false
	uow.trackedAggregates = uow.trackedAggregates[:0]
	uow.store.mu.Unlock()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewMemoryOrderRepository(uow.store.state.orders, uow)
}

func (uow *UnitOfWork) DriverRepository() ports.DriverRepository {
	return driverrepo.NewMemoryDriverRepository(uow.store.state.drivers, uow)
}

func (uow *UnitOfWork) AccountRepository() ports.AccountRepository {
	return accountrepo.NewMemoryAccountRepository(uow.store.state.accounts, uow)
}

func (uow *UnitOfWork) SessionRepository() ports.SessionRepository {
	return sessionrepo.NewMemorySessionRepository(uow.store.state.session, uow)
}

func (uow *UnitOfWork) TripRepository() ports.TripRepository {
	return triprepo.NewMemoryTripRepository(uow.store.state.activeTrip, uow.store.state.tripHistory, uow)
}

func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return notificationrepo.NewMemoryNotificationRepository(uow.store.state.notifications, uow)
}

// TrackAggregate registers an aggregate written during this unit of work.
// Repositories call it after every successful write.
func (uow *UnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

// TrackedIDs returns the identities written so far, in write order.
func (uow *UnitOfWork) TrackedIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(uow.trackedAggregates))
	for _, tracked := range uow.trackedAggregates {
		ids = append(ids, tracked.ID)
	}
	return ids
}
