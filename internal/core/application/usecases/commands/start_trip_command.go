package commands

import (
	"errors"
	"math"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var (
	ErrStartTripCommandIsNotConstructed = errors.New(
		"StartTripCommand must be created via NewStartTripCommand constructor",
	)
	ErrEndTripCommandIsNotConstructed = errors.New(
		"EndTripCommand must be created via NewEndTripCommand constructor",
	)
	ErrRecordTripDistanceCommandIsNotConstructed = errors.New(
		"RecordTripDistanceCommand must be created via NewRecordTripDistanceCommand constructor",
	)
	ErrAttachOrderToTripCommandIsNotConstructed = errors.New(
		"AttachOrderToTripCommand must be created via NewAttachOrderToTripCommand constructor",
	)
)

// StartTripCommand opens a trip at the given place.
//
// Example:
//
//	start, _ := kernel.NewLocation(40.7589, -73.9851, "Times Square")
//	cmd, err := NewStartTripCommand(kernel.NewUUID(), start)
type StartTripCommand struct { //nolint:recvcheck //using for validation
	tripID   kernel.UUID
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewStartTripCommand(tripID kernel.UUID, location kernel.Location) (StartTripCommand, error) {
	cmd := StartTripCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(tripID.Validate(), location.Validate()); err != nil {
		return StartTripCommand{}, err
	}

	cmd.tripID = tripID
	cmd.location = location
	return cmd, nil
}

func (c StartTripCommand) Validate() error {
	return c.guard.Validate(ErrStartTripCommandIsNotConstructed)
}

func (c StartTripCommand) TripID() kernel.UUID {
	return c.tripID
}

func (c StartTripCommand) Location() kernel.Location {
	return c.location
}

// EndTripCommand closes the active trip at the given place.
type EndTripCommand struct { //nolint:recvcheck //using for validation
	location kernel.Location

	guard guard.ConstructorGuard
}

func NewEndTripCommand(location kernel.Location) (EndTripCommand, error) {
	if err := location.Validate(); err != nil {
		return EndTripCommand{}, err
	}

	return EndTripCommand{
		location: location,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c EndTripCommand) Validate() error {
	return c.guard.Validate(ErrEndTripCommandIsNotConstructed)
}

func (c EndTripCommand) Location() kernel.Location {
	return c.location
}

// RecordTripDistanceCommand adds driven kilometres to the active trip.
type RecordTripDistanceCommand struct { //nolint:recvcheck //using for validation
	delta float64

	guard guard.ConstructorGuard
}

func NewRecordTripDistanceCommand(delta float64) (RecordTripDistanceCommand, error) {
	if math.IsNaN(delta) || math.IsInf(delta, 0) || delta < 0 {
		return RecordTripDistanceCommand{}, errs.NewValueIsOutOfRangeError("distance", delta, 0, math.MaxFloat64)
	}

	return RecordTripDistanceCommand{
		delta: delta,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c RecordTripDistanceCommand) Validate() error {
	return c.guard.Validate(ErrRecordTripDistanceCommandIsNotConstructed)
}

func (c RecordTripDistanceCommand) Delta() float64 {
	return c.delta
}

// AttachOrderToTripCommand records an order on the active trip by hand.
// Order status changes attach orders on their own.
type AttachOrderToTripCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAttachOrderToTripCommand(orderID kernel.UUID) (AttachOrderToTripCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AttachOrderToTripCommand{}, err
	}

	return AttachOrderToTripCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AttachOrderToTripCommand) Validate() error {
	return c.guard.Validate(ErrAttachOrderToTripCommandIsNotConstructed)
}

func (c AttachOrderToTripCommand) OrderID() kernel.UUID {
	return c.orderID
}
