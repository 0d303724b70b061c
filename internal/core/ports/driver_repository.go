package ports

import (
	"context"

	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
)

// DriverRepository defines the storage contract for driver records.
type DriverRepository interface {
	// Add stores a new driver. The ID is shared with the owning account.
	Add(ctx context.Context, aggregate *driver.Driver) error

	// Update replaces the stored state of an existing driver.
	Update(ctx context.Context, aggregate *driver.Driver) error

	// Get retrieves a driver by identifier.
	// Returns *errs.ObjectNotFoundError if the driver is unknown.
	Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error)
}
