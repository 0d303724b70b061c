// Package commands contains business operations that modify the driver core.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"porter/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	AccountRepoFactory interface {
		AccountRepository() ports.AccountRepository
	}

	SessionRepoFactory interface {
		SessionRepository() ports.SessionRepository
	}

	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// AccountUoW serves the identity store: registration, login and profile edits.
	AccountUoW interface {
		TxManager
		AccountRepoFactory
		DriverRepoFactory
		SessionRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// SessionUoW serves operations on the session slot alone.
	SessionUoW interface {
		TxManager
		SessionRepoFactory
	}

	SessionUoWFactory interface {
		Create() SessionUoW
	}

	// DriverUoW serves driver status and position changes.
	// Position changes feed the distance of the active trip.
	DriverUoW interface {
		TxManager
		SessionRepoFactory
		DriverRepoFactory
		TripRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TripUoW serves the trip tracker.
	TripUoW interface {
		TxManager
		SessionRepoFactory
		TripRepoFactory
		OrderRepoFactory
	}

	TripUoWFactory interface {
		Create() TripUoW
	}

	// NotificationUoW serves the notification queue.
	NotificationUoW interface {
		TxManager
		SessionRepoFactory
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// SummaryUoW reads the ledger and pushes the resulting notification.
	SummaryUoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	SummaryUoWFactory interface {
		Create() SummaryUoW
	}

	// UoW manages transactions across every aggregate. Order status changes
	// use it because a delivery touches the order, the driver, the active
	// trip and the notification queue at once.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   driverRepo := uow.DriverRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		DriverRepoFactory
		AccountRepoFactory
		SessionRepoFactory
		TripRepoFactory
		NotificationRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
