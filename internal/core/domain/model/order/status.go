package order

import (
	"fmt"
	"strings"

	"porter/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a one-way state machine: every edge moves forward and the two
// terminal states accept no further transitions.
//
// State transitions:
//
//	Available ──> Accepted ──> PickedUp ──> InTransit ──> Delivered
//	    │
//	    └──> Cancelled
//
// Any other edge, including a transition to the current status, is rejected
// with an errs.IllegalTransitionError.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Available is the initial status. The order waits in the feed for a driver.
	Available

	// Accepted means a driver took the order and is heading to the pickup point.
	Accepted

	// PickedUp means the driver collected the package.
	PickedUp

	// InTransit means the driver is on the way to the customer.
	InTransit

	// Delivered is terminal. Entering it credits the driver with the commission.
	Delivered

	// Cancelled is terminal. Reached only by declining an available order.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Available: "available",
		Accepted:  "accepted",
		PickedUp:  "picked_up",
		InTransit: "in_transit",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// getTransitions lists the only permitted edges of the state machine.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // terminal and unknown statuses have no outgoing edges
	return map[Status][]Status{
		Available: {Accepted, Cancelled},
		Accepted:  {PickedUp},
		PickedUp:  {InTransit},
		InTransit: {Delivered},
	}
}

// ParseStatus converts the textual form used on the console, by the voice
// dispatcher and in seed fixtures ("available", "picked_up", ...) into a Status.
// Matching ignores case and surrounding whitespace; hyphens and spaces are
// accepted in place of underscores.
//
// Returns:
//   - the matching Status
//   - error wrapping errs.ErrValueIsInvalid for unknown text
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer("-", "_", " ", "_").Replace(normalized)

	for status, str := range getStatusStrings() {
		if status != Unknown && str == normalized {
			return status, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a known status", s),
	)
}

// Validate checks that the Status is one of the defined lifecycle states.
//
// Returns:
//   - nil for Available, Accepted, PickedUp, InTransit, Delivered, Cancelled
//   - error for Unknown (0) and any other value
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the snake_case name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is Delivered or Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// IsActive reports whether the order is in the driver's hands:
// Accepted, PickedUp or InTransit.
func (s Status) IsActive() bool {
	return s == Accepted || s == PickedUp || s == InTransit
}

// IsCompleted reports whether the order reached a terminal status.
func (s Status) IsCompleted() bool {
	return s.IsTerminal()
}

// CanTransitionTo reports whether target is a permitted next status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range getTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the edge s -> target without mutating anything.
//
// Returns:
//   - (target, nil) when the edge exists
//   - (Unknown, *errs.IllegalTransitionError) otherwise
//
// Example:
//
//	next, err := order.Delivered.TransitionTo(order.Accepted)
//	// next == order.Unknown, errors.Is(err, errs.ErrIllegalTransition) == true
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewIllegalTransitionError("order", s, target)
	}
	return target, nil
}

// Next returns the following status along the forward delivery chain.
// Cancelled is never returned; it is reachable only by declining.
//
// Returns:
//   - (next, nil) for Available, Accepted, PickedUp and InTransit
//   - (Unknown, *errs.IllegalTransitionError) for terminal and unknown statuses
func (s Status) Next() (Status, error) {
	//nolint:exhaustive // remaining statuses have no forward step
	switch s {
	case Available:
		return Accepted, nil
	case Accepted:
		return PickedUp, nil
	case PickedUp:
		return InTransit, nil
	case InTransit:
		return Delivered, nil
	default:
		return Unknown, errs.NewIllegalTransitionError("order", s, Unknown)
	}
}
