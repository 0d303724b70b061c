package ports

import (
	"context"

	"porter/internal/core/domain/model/trip"
)

// TripRepository defines the storage contract for the trip tracker:
// a slot for the active trip and a most-recent-first history of ended ones.
type TripRepository interface {
	// GetActive returns the open trip, or nil without error when none is open.
	GetActive(ctx context.Context) (*trip.Trip, error)

	// SaveActive stores t as the open trip. t must not be ended.
	SaveActive(ctx context.Context, t *trip.Trip) error

	// Archive moves an ended trip to the front of the history and empties the
	// active slot.
	Archive(ctx context.Context, t *trip.Trip) error

	// History returns ended trips, most recent first.
	History(ctx context.Context) ([]*trip.Trip, error)
}
