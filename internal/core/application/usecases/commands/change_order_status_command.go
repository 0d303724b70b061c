package commands

import (
	"errors"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
	ErrAdvanceOrderCommandIsNotConstructed = errors.New(
		"AdvanceOrderCommand must be created via NewAdvanceOrderCommand constructor",
	)
)

// ChangeOrderStatusCommand asks to move an order to an explicit status.
// Accepting and declining are the two moves a driver makes from the
// available list, so they have their own constructors.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(orderID)
//	step, err := handler.Handle(ctx, cmd)
//	// step.From == order.Available, step.To == order.Accepted
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	target  order.Status

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, target order.Status) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTarget(target),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// NewAcceptOrderCommand takes an available order.
func NewAcceptOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, order.Accepted)
}

// NewDeclineOrderCommand turns an available order down. The order is cancelled.
func NewDeclineOrderCommand(orderID kernel.UUID) (ChangeOrderStatusCommand, error) {
	return NewChangeOrderStatusCommand(orderID, order.Cancelled)
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	c.target = target
	return nil
}

// AdvanceOrderCommand moves an order one step along the delivery chain.
type AdvanceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAdvanceOrderCommand(orderID kernel.UUID) (AdvanceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceOrderCommand{}, err
	}

	return AdvanceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderCommandIsNotConstructed)
}

func (c AdvanceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
