package trip

import (
	"errors"
	"fmt"
	"math"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when using an improperly initialized Trip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")

	// ErrTripAlreadyActive is returned when a trip is started while another one is open.
	ErrTripAlreadyActive = errors.New("trip already active")

	// ErrTripIsEnded is returned when an ended trip is modified.
	ErrTripIsEnded = errors.New("trip is ended")
)

// Trip is one continuous driving session. It is an aggregate root: the tracker
// holds at most one active trip and an archive of ended ones.
//
// Invariants:
//   - Distance never decreases while the trip is active
//   - Orders keep insertion order and hold no duplicates
//   - Once ended, EndTime and EndLocation are set and nothing else changes
//
// Example usage:
//
//	t, err := trip.NewTrip(kernel.NewUUID(), here, clock.Now())
//	_ = t.RecordDistance(1.2)
//	_ = t.AttachOrder(orderID)
//	_ = t.End(there, clock.Now())
type Trip struct {
	id            kernel.UUID
	startTime     time.Time
	endTime       time.Time
	startLocation kernel.Location
	endLocation   kernel.Location
	distance      float64
	earnings      float64
	orders        []kernel.UUID

	isConstructed bool
}

// NewTrip opens a trip at the given place and time with zero distance,
// zero earnings and no orders.
func NewTrip(id kernel.UUID, startLocation kernel.Location, startTime time.Time) (*Trip, error) {
	t := &Trip{
		orders:        make([]kernel.UUID, 0),
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setStartLocation(startLocation),
		t.setStartTime(startTime),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip rebuilds a trip from stored state.
// endLocation and endTime are only read when ended is true.
func RestoreTrip(
	id kernel.UUID,
	startLocation kernel.Location,
	startTime time.Time,
	distance float64,
	earnings float64,
	orders []kernel.UUID,
	ended bool,
	endLocation kernel.Location,
	endTime time.Time,
) (*Trip, error) {
	t, err := NewTrip(id, startLocation, startTime)
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		t.RecordDistance(distance),
		t.AddEarnings(earnings),
	); err != nil {
		return nil, err
	}

	for _, orderID := range orders {
		if err := t.AttachOrder(orderID); err != nil {
			return nil, err
		}
	}

	if ended {
		if err := t.End(endLocation, endTime); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Validate ensures the Trip was created through a constructor.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

func (t *Trip) ID() kernel.UUID {
	return t.id
}

func (t *Trip) StartTime() time.Time {
	return t.startTime
}

func (t *Trip) StartLocation() kernel.Location {
	return t.startLocation
}

// EndTime returns when the trip ended, zero while active.
func (t *Trip) EndTime() time.Time {
	return t.endTime
}

// EndLocation returns where the trip ended and whether it has ended.
func (t *Trip) EndLocation() (kernel.Location, bool) {
	return t.endLocation, t.IsEnded()
}

// Distance returns the kilometres covered so far.
func (t *Trip) Distance() float64 {
	return t.distance
}

// Earnings returns the commission collected on the trip.
func (t *Trip) Earnings() float64 {
	return t.earnings
}

// Orders returns a copy of the order identities handled during the trip.
func (t *Trip) Orders() []kernel.UUID {
	orders := make([]kernel.UUID, len(t.orders))
	copy(orders, t.orders)
	return orders
}

func (t *Trip) IsEnded() bool {
	return !t.endTime.IsZero()
}

// Duration returns the elapsed time until now, or until the end of an ended trip.
func (t *Trip) Duration(now time.Time) time.Duration {
	if t.IsEnded() {
		return t.endTime.Sub(t.startTime)
	}
	if now.Before(t.startTime) {
		return 0
	}
	return now.Sub(t.startTime)
}

// RecordDistance adds delta kilometres to the trip.
//
// Returns:
//   - ErrTripIsEnded if the trip is ended
//   - *errs.ValueIsOutOfRangeError if delta is negative or not finite
func (t *Trip) RecordDistance(delta float64) error {
	if t.IsEnded() {
		return ErrTripIsEnded
	}
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return errs.NewValueIsOutOfRangeError("distance", delta, 0, math.MaxFloat64)
	}
	t.distance += delta
	return nil
}

// AddEarnings adds a delivered order's commission to the trip.
func (t *Trip) AddEarnings(amount float64) error {
	if t.IsEnded() {
		return ErrTripIsEnded
	}
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("earnings is invalid", fmt.Errorf("%v is negative or not a number", amount))
	}
	t.earnings += amount
	return nil
}

// AttachOrder records that the order was handled during the trip.
// Attaching the same order again changes nothing.
func (t *Trip) AttachOrder(orderID kernel.UUID) error {
	if t.IsEnded() {
		return ErrTripIsEnded
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	if t.HasOrder(orderID) {
		return nil
	}
	t.orders = append(t.orders, orderID)
	return nil
}

// HasOrder reports whether the order is attached to the trip.
func (t *Trip) HasOrder(orderID kernel.UUID) bool {
	for _, id := range t.orders {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// End closes the trip at the given place. at is clamped to the start time.
func (t *Trip) End(location kernel.Location, at time.Time) error {
	if t.IsEnded() {
		return ErrTripIsEnded
	}
	if err := location.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("endTime")
	}
	if at.Before(t.startTime) {
		at = t.startTime
	}

	t.endLocation = location
	t.endTime = at
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setStartLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	t.startLocation = location
	return nil
}

func (t *Trip) setStartTime(startTime time.Time) error {
	if startTime.IsZero() {
		return errs.NewValueIsRequiredError("startTime")
	}
	t.startTime = startTime
	return nil
}
