package order

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

// CommissionRate is the share of the payment amount credited to the driver
// when an order is delivered.
const CommissionRate = 0.15

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Timeline holds the moments an order passed through its lifecycle.
// A zero time.Time means the corresponding transition has not happened.
type Timeline struct {
	CreatedAt   time.Time
	AcceptedAt  time.Time
	PickedUpAt  time.Time
	DeliveredAt time.Time
	CancelledAt time.Time
}

// Latest returns the most recent moment recorded on the timeline.
func (t Timeline) Latest() time.Time {
	latest := t.CreatedAt
	for _, stamp := range []time.Time{t.AcceptedAt, t.PickedUpAt, t.DeliveredAt, t.CancelledAt} {
		if stamp.After(latest) {
			latest = stamp
		}
	}
	return latest
}

// Order represents a delivery task in the driver's feed. It is the aggregate root
// of the order ledger and owns its lifecycle from the feed to delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, customer, route and at least one item
//   - Payment amount is not negative
//   - Status only moves forward along Available -> Accepted -> PickedUp -> InTransit -> Delivered,
//     or from Available to Cancelled
//   - Each lifecycle timestamp is stamped exactly once, when its transition happens,
//     and never earlier than any timestamp already recorded
//   - A driver is attached on acceptance and never changes afterwards
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// driverID is the driver who accepted the order (nil while available or cancelled)
	driverID *kernel.UUID

	// customer is the contact at the delivery end
	customer Customer

	// route holds pickup, dropoff and the card estimate
	route Route

	// items are the ordered line items, in the order they were listed
	items []Item

	// paymentAmount is the total charged to the customer
	paymentAmount float64

	// notes are delivery instructions from the customer, possibly empty
	notes string

	// status represents the current state in the order lifecycle
	status Status

	// timeline records when each transition happened
	timeline Timeline

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an available order ready to appear in the feed.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - customer: contact at the delivery end
//   - route: pickup, dropoff and estimate
//   - items: at least one line item
//   - paymentAmount: total charged to the customer, not negative
//   - notes: delivery instructions, optional
//   - createdAt: creation time, immutable afterwards
//
// Returns:
//   - *Order: the created order in Available status with no driver
//   - error: every failed rule joined with errors.Join
//
// Example:
//
//	customer, _ := order.NewCustomer("Sarah Johnson", "+1 (555) 987-6543")
//	route, _ := order.NewRoute(pickup, dropoff, 2.3, 15)
//	item, _ := order.NewItem("Burger Combo", 2, 12.99)
//	o, err := order.NewOrder(kernel.NewUUID(), customer, route, []order.Item{item}, 38.95,
//	    "Leave at door, ring bell", time.Now())
func NewOrder(
	id kernel.UUID,
	customer Customer,
	route Route,
	items []Item,
	paymentAmount float64,
	notes string,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Available,
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRoute(route),
		o.setItems(items),
		o.setPaymentAmount(paymentAmount),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from stored state without replaying transitions.
// It validates the same rules as NewOrder plus consistency between status and driver:
// active and delivered orders must carry a driver, available and cancelled ones must not.
func RestoreOrder(
	id kernel.UUID,
	customer Customer,
	route Route,
	items []Item,
	paymentAmount float64,
	notes string,
	status Status,
	driverID *kernel.UUID,
	timeline Timeline,
) (*Order, error) {
	o := &Order{
		notes:         strings.TrimSpace(notes),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setRoute(route),
		o.setItems(items),
		o.setPaymentAmount(paymentAmount),
		o.setCreatedAt(timeline.CreatedAt),
		status.Validate(),
		validateDriverForStatus(status, driverID),
	); err != nil {
		return nil, err
	}

	o.status = status
	o.timeline = timeline
	if driverID != nil {
		restored := *driverID
		o.driverID = &restored
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
//
// Returns:
//   - nil if the order is valid
//   - ErrOrderIsNotConstructed if the order was not created via a constructor
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Customer returns the customer contact.
func (o *Order) Customer() Customer {
	return o.customer
}

// Route returns pickup, dropoff and estimate.
func (o *Order) Route() Route {
	return o.route
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// PaymentAmount returns the total charged to the customer.
func (o *Order) PaymentAmount() float64 {
	return o.paymentAmount
}

// Notes returns the customer's delivery instructions, empty when there are none.
func (o *Order) Notes() string {
	return o.notes
}

// Commission returns the driver's earnings for this order: CommissionRate of the payment amount.
//
// Example:
//
//	// paymentAmount 38.95
//	o.Commission() // 5.8425
func (o *Order) Commission() float64 {
	return o.paymentAmount * CommissionRate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Timeline returns the lifecycle timestamps.
func (o *Order) Timeline() Timeline {
	return o.timeline
}

// Driver returns a copy of the accepting driver's ID, or nil if none.
func (o *Order) Driver() *kernel.UUID {
	if o.driverID == nil {
		return nil
	}
	id := *o.driverID
	return &id
}

// Accept hands the order to a driver and moves it to Accepted.
//
// Business rules:
//   - The driver ID must be valid
//   - The order must be Available
//   - AcceptedAt is stamped with at, clamped to the latest recorded timestamp
//
// Returns:
//   - nil on success
//   - *errs.IllegalTransitionError if the order is not Available
func (o *Order) Accept(driverID kernel.UUID, at time.Time) error {
	if err := driverID.Validate(); err != nil {
		return err
	}

	next, err := o.status.TransitionTo(Accepted)
	if err != nil {
		return err
	}

	o.timeline.AcceptedAt = o.clamp(at)
	o.status = next
	o.driverID = &driverID
	return nil
}

// PickUp records that the driver collected the package. The order must be Accepted.
func (o *Order) PickUp(at time.Time) error {
	next, err := o.status.TransitionTo(PickedUp)
	if err != nil {
		return err
	}

	o.timeline.PickedUpAt = o.clamp(at)
	o.status = next
	return nil
}

// StartTransit records that the driver is heading to the customer. The order must be PickedUp.
func (o *Order) StartTransit(_ time.Time) error {
	next, err := o.status.TransitionTo(InTransit)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// Deliver completes the order. The order must be InTransit.
//
// Delivered is terminal, so a second call always fails; callers rely on this
// to credit the commission exactly once.
func (o *Order) Deliver(at time.Time) error {
	next, err := o.status.TransitionTo(Delivered)
	if err != nil {
		return err
	}

	o.timeline.DeliveredAt = o.clamp(at)
	o.status = next
	return nil
}

// Cancel declines an available order. Cancelled is terminal.
func (o *Order) Cancel(at time.Time) error {
	next, err := o.status.TransitionTo(Cancelled)
	if err != nil {
		return err
	}

	o.timeline.CancelledAt = o.clamp(at)
	o.status = next
	return nil
}

// ChangeStatus applies the transition to target using the dedicated method for it.
// driverID is only used when target is Accepted.
//
// Returns:
//   - nil on success
//   - *errs.IllegalTransitionError for any edge the state machine does not define
func (o *Order) ChangeStatus(target Status, driverID kernel.UUID, at time.Time) error {
	//nolint:exhaustive // remaining targets are never reachable
	switch target {
	case Accepted:
		return o.Accept(driverID, at)
	case PickedUp:
		return o.PickUp(at)
	case InTransit:
		return o.StartTransit(at)
	case Delivered:
		return o.Deliver(at)
	case Cancelled:
		return o.Cancel(at)
	default:
		return errs.NewIllegalTransitionError("order", o.status, target)
	}
}

// Advance moves the order one step along the forward delivery chain.
func (o *Order) Advance(driverID kernel.UUID, at time.Time) error {
	next, err := o.status.Next()
	if err != nil {
		return err
	}
	return o.ChangeStatus(next, driverID, at)
}

// clamp keeps timestamps non-decreasing even if the clock moves backwards.
func (o *Order) clamp(at time.Time) time.Time {
	if latest := o.timeline.Latest(); at.Before(latest) {
		return latest
	}
	return at
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setRoute(route Route) error {
	if err := route.Validate(); err != nil {
		return err
	}
	o.route = route
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	validated := make([]Item, 0, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		validated = append(validated, item)
	}

	o.items = validated
	return nil
}

func (o *Order) setPaymentAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("payment amount is invalid", fmt.Errorf("%v is negative or not a number", amount))
	}
	o.paymentAmount = amount
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.timeline.CreatedAt = createdAt
	return nil
}

func validateDriverForStatus(status Status, driverID *kernel.UUID) error {
	needsDriver := status.IsActive() || status == Delivered
	switch {
	case needsDriver && driverID == nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no driver", status),
		)
	case !needsDriver && driverID != nil:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a driver", status),
		)
	case driverID != nil:
		return driverID.Validate()
	}
	return nil
}
