package commands

import (
	"errors"
	"math"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var (
	ErrAddOrderCommandIsNotConstructed = errors.New(
		"AddOrderCommand must be created via NewAddOrderCommand constructor",
	)
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// AddOrderCommand represents a new order offered to the driver.
// Orders come from the dispatch side, so adding one needs no session.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewAddOrderCommand(orderID, customer, route, items, 38.95, "Leave at door, ring bell")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewAddOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add order: %w", err)
//	}
type AddOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	customer order.Customer
	route    order.Route
	items    []order.Item
	payment  float64
	notes    string

	guard guard.ConstructorGuard
}

// NewAddOrderCommand validates the order data that does not depend on the
// order aggregate itself: presence of items and a positive payment.
func NewAddOrderCommand(
	orderID kernel.UUID,
	customer order.Customer,
	route order.Route,
	items []order.Item,
	payment float64,
	notes string,
) (AddOrderCommand, error) {
	cmd := AddOrderCommand{
		customer: customer,
		route:    route,
		notes:    notes,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setItems(items),
		cmd.setPayment(payment),
	); err != nil {
		return AddOrderCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderCommandIsNotConstructed)
}

func (c AddOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c AddOrderCommand) Route() order.Route {
	return c.route
}

// Items returns a copy of the line items.
func (c AddOrderCommand) Items() []order.Item {
	items := make([]order.Item, len(c.items))
	copy(items, c.items)
	return items
}

// Payment returns what the customer pays for the order.
func (c AddOrderCommand) Payment() float64 {
	return c.payment
}

// Notes returns the customer's delivery instructions.
func (c AddOrderCommand) Notes() string {
	return c.notes
}

func (c *AddOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderCommand) setItems(items []order.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	c.items = make([]order.Item, len(items))
	copy(c.items, items)
	return nil
}

func (c *AddOrderCommand) setPayment(payment float64) error {
	if math.IsNaN(payment) || math.IsInf(payment, 0) || payment <= 0 {
		return errs.NewValueIsOutOfRangeError("payment", payment, 0, math.MaxFloat64)
	}

	c.payment = payment
	return nil
}
