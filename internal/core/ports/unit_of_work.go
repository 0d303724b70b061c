package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Everything done through its repositories between Begin and Commit is applied
// together; Rollback restores the state seen at Begin.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit keeps the changes made since Begin.
	// Returns error if no active transaction.
	Commit(ctx context.Context) error

	// Rollback discards the changes made since Begin.
	// Returns error if no active transaction.
	Rollback(ctx context.Context) error

	// Repositories bound to the current transaction.
	// They must only be used between Begin and Commit or Rollback.
	OrderRepository() OrderRepository
	DriverRepository() DriverRepository
	AccountRepository() AccountRepository
	SessionRepository() SessionRepository
	TripRepository() TripRepository
	NotificationRepository() NotificationRepository
}
