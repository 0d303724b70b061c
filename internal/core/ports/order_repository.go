// Package ports defines the contracts between the driver core and its adapters:
// repositories for every aggregate, the unit of work that scopes them, and the
// password, token and clock services the use cases depend on.
package ports

import (
	"context"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the order ledger.
type OrderRepository interface {
	// Add stores a new order at the end of the ledger.
	// Returns *errs.ObjectAlreadyExistsError if an order with the same ID exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order.
	// Returns *errs.ObjectNotFoundError if the order is unknown.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns *errs.ObjectNotFoundError if the order is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order in insertion order.
	// Filtering by status (available, active, completed) is done by the caller:
	//
	//	orders, err := repo.GetAll(ctx)
	//	for _, o := range orders {
	//	    if o.Status().IsActive() {
	//	        // accepted, picked up or in transit
	//	    }
	//	}
	GetAll(ctx context.Context) ([]*order.Order, error)
}
