package order

import (
	"errors"
	"fmt"
	"math"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

// ErrRouteIsNotConstructed is returned when a zero-value Route is used.
var ErrRouteIsNotConstructed = errs.NewValueIsRequiredError("route must be created via NewRoute constructor")

// Route describes where an order is collected and where it is dropped off,
// together with the estimate shown on the order card.
type Route struct { //nolint:recvcheck //using for validation
	pickup           kernel.Location
	dropoff          kernel.Location
	distanceKm       float64
	estimatedMinutes int
	guard            guard.ConstructorGuard
}

// NewRoute creates a Route.
//
// Parameters:
//   - pickup: where the driver collects the package
//   - dropoff: where the customer receives it
//   - distanceKm: estimated distance, not negative
//   - estimatedMinutes: estimated duration, not negative
func NewRoute(pickup kernel.Location, dropoff kernel.Location, distanceKm float64, estimatedMinutes int) (Route, error) {
	r := Route{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		r.setPickup(pickup),
		r.setDropoff(dropoff),
		r.setDistance(distanceKm),
		r.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return Route{}, err
	}

	return r, nil
}

func (r Route) Validate() error {
	return r.guard.Validate(ErrRouteIsNotConstructed)
}

func (r Route) Pickup() kernel.Location {
	return r.pickup
}

func (r Route) Dropoff() kernel.Location {
	return r.dropoff
}

func (r Route) DistanceKm() float64 {
	return r.distanceKm
}

func (r Route) EstimatedMinutes() int {
	return r.estimatedMinutes
}

func (r *Route) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	r.pickup = pickup
	return nil
}

func (r *Route) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	r.dropoff = dropoff
	return nil
}

func (r *Route) setDistance(distanceKm float64) error {
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance is invalid", fmt.Errorf("%v is negative or not a number", distanceKm))
	}
	r.distanceKm = distanceKm
	return nil
}

func (r *Route) setEstimatedMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated time is invalid", fmt.Errorf("%d is negative", minutes))
	}
	r.estimatedMinutes = minutes
	return nil
}
