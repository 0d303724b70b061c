package services

import (
	"errors"
	"time"

	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/model/trip"
)

// ErrOrderBelongsToAnotherDriver is returned when a driver tries to move an order
// accepted by someone else.
var ErrOrderBelongsToAnotherDriver = errors.New("order belongs to another driver")

// Transition describes what a lifecycle step did.
type Transition struct {
	From order.Status
	To   order.Status

	// Commission is the amount credited to the driver, non-zero only on delivery.
	Commission float64

	// AttachedToTrip is true when the order was recorded on the active trip.
	AttachedToTrip bool
}

// Delivered reports whether the step completed the order.
func (t Transition) Delivered() bool {
	return t.To == order.Delivered
}

// OrderLifecycle is a domain service that applies order status changes together
// with their effects on the driver and the active trip.
//
// Business rules:
//   - Only the edges of order.Status are allowed; anything else is an IllegalTransition
//   - An accepted order can only be moved by the driver who accepted it
//   - Entering Delivered credits the driver with the order's commission and one
//     delivery; the terminal state guarantees this happens once
//   - While a trip is active every moved order is attached to it, and the
//     commission of a delivered order is added to the trip's earnings
//
// Example usage:
//
//	lifecycle := services.NewOrderLifecycle()
//	step, err := lifecycle.ChangeStatus(o, d, activeTrip, order.Delivered, clock.Now())
//	if err != nil {
//	    // IllegalTransition, ownership or validation failure
//	}
//	if step.Delivered() {
//	    // d.Performance().TotalEarnings grew by step.Commission
//	}
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// ChangeStatus moves o to target.
//
// Parameters:
//   - o: the order to move
//   - d: the driver acting on it
//   - active: the open trip, or nil
//   - target: the requested status
//   - at: the transition time
//
// Returns:
//   - Transition: what happened
//   - error: the first failed rule; the aggregates are unchanged when the order
//     transition itself fails
func (l OrderLifecycle) ChangeStatus(
	o *order.Order,
	d *driver.Driver,
	active *trip.Trip,
	target order.Status,
	at time.Time,
) (Transition, error) {
	if err := l.validate(o, d, active); err != nil {
		return Transition{}, err
	}

	step := Transition{From: o.Status(), To: target}

	if err := o.ChangeStatus(target, d.ID(), at); err != nil {
		return Transition{}, err
	}

	if target == order.Delivered {
		step.Commission = o.Commission()
		if err := d.CreditDelivery(step.Commission); err != nil {
			return Transition{}, err
		}
	}

	if active != nil && !active.IsEnded() {
		if err := active.AttachOrder(o.ID()); err != nil {
			return Transition{}, err
		}
		step.AttachedToTrip = true

		if step.Commission > 0 {
			if err := active.AddEarnings(step.Commission); err != nil {
				return Transition{}, err
			}
		}
	}

	return step, nil
}

// Advance moves o one step along the delivery chain
// (Available -> Accepted -> PickedUp -> InTransit -> Delivered).
func (l OrderLifecycle) Advance(o *order.Order, d *driver.Driver, active *trip.Trip, at time.Time) (Transition, error) {
	if err := o.Validate(); err != nil {
		return Transition{}, err
	}

	next, err := o.Status().Next()
	if err != nil {
		return Transition{}, err
	}

	return l.ChangeStatus(o, d, active, next, at)
}

func (l OrderLifecycle) validate(o *order.Order, d *driver.Driver, active *trip.Trip) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if active != nil {
		if err := active.Validate(); err != nil {
			return err
		}
	}

	if owner := o.Driver(); owner != nil && !owner.IsEqual(d.ID()) {
		return ErrOrderBelongsToAnotherDriver
	}

	return nil
}
