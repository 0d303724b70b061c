package commands

import (
	"context"

	"porter/internal/core/domain/model/order"
	"porter/internal/core/ports"
)

// AddOrderCommandHandler puts a new Available order into the ledger.
//
// Example:
//
//	handler := NewAddOrderCommandHandler(uowFactory, clock)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// The order now shows up in the available list
type AddOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

func NewAddOrderCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AddOrderCommandHandler {
	return AddOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle stores the order stamped with the current time.
// Returns *errs.ObjectAlreadyExistsError when the ID is taken.
func (h *AddOrderCommandHandler) Handle(ctx context.Context, cmd AddOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	o, err := order.NewOrder(cmd.OrderID(), cmd.Customer(), cmd.Route(), cmd.Items(), cmd.Payment(), cmd.Notes(), h.clock.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
