package commands

import (
	"context"
	"time"

	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/model/trip"
	"porter/internal/core/domain/services"
	"porter/internal/core/ports"
)

// ChangeOrderStatusCommandHandler applies an order status change for the
// logged-in driver. A successful change is committed together with all of its
// effects, and a failed one leaves every aggregate untouched.
//
// Effects:
//   - Delivered: the driver is credited with the commission and one delivery,
//     the active trip earns the commission and an "Order Delivered" notification is pushed
//   - Cancelled: an "Order Declined" notification is pushed
//   - any change while a trip is active attaches the order to the trip
//
// Example:
//
//	handler := NewChangeOrderStatusCommandHandler(uowFactory, clock)
//	cmd, _ := NewChangeOrderStatusCommand(orderID, order.Delivered)
//	step, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrIllegalTransition):
//	    log.Println("order cannot move there")
//	case errors.Is(err, account.ErrUnauthenticated):
//	    log.Println("log in first")
//	case err == nil && step.Delivered():
//	    log.Printf("earned %.2f", step.Commission)
//	}
type ChangeOrderStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	lifecycle  services.OrderLifecycle
	alerts     services.Alerts
}

func NewChangeOrderStatusCommandHandler(uowFactory UoWFactory, clock ports.Clock) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		lifecycle:  services.NewOrderLifecycle(),
		alerts:     services.NewAlerts(),
	}
}

func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (services.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return services.Transition{}, err
	}

	return applyOrderTransition(ctx, h.uowFactory, h.clock, h.alerts, cmd.OrderID(),
		func(o *order.Order, d *driver.Driver, active *trip.Trip, at time.Time) (services.Transition, error) {
			return h.lifecycle.ChangeStatus(o, d, active, cmd.Target(), at)
		})
}

// AdvanceOrderCommandHandler moves an order to its next status with the same
// effects as ChangeOrderStatusCommandHandler.
type AdvanceOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
	lifecycle  services.OrderLifecycle
	alerts     services.Alerts
}

func NewAdvanceOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) AdvanceOrderCommandHandler {
	return AdvanceOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		lifecycle:  services.NewOrderLifecycle(),
		alerts:     services.NewAlerts(),
	}
}

func (h *AdvanceOrderCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderCommand) (services.Transition, error) {
	if err := cmd.Validate(); err != nil {
		return services.Transition{}, err
	}

	return applyOrderTransition(ctx, h.uowFactory, h.clock, h.alerts, cmd.OrderID(), h.lifecycle.Advance)
}

type transitionFunc func(o *order.Order, d *driver.Driver, active *trip.Trip, at time.Time) (services.Transition, error)

func applyOrderTransition(
	ctx context.Context,
	uowFactory UoWFactory,
	clock ports.Clock,
	alerts services.Alerts,
	orderID kernel.UUID,
	transition transitionFunc,
) (services.Transition, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Transition{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := clock.Now()

	drivers := uow.DriverRepository()
	d, err := sessionDriver(ctx, uow.SessionRepository(), drivers, now)
	if err != nil {
		return services.Transition{}, err
	}

	orders := uow.OrderRepository()
	o, err := orders.Get(ctx, orderID)
	if err != nil {
		return services.Transition{}, err
	}

	trips := uow.TripRepository()
	active, err := trips.GetActive(ctx)
	if err != nil {
		return services.Transition{}, err
	}

	step, err := transition(o, d, active, now)
	if err != nil {
		return services.Transition{}, err
	}

	if err = orders.Update(ctx, o); err != nil {
		return services.Transition{}, err
	}

	var alert *notification.Notification
	switch step.To {
	case order.Delivered:
		if err = drivers.Update(ctx, d); err != nil {
			return services.Transition{}, err
		}
		alert, err = alerts.Delivered(kernel.NewUUID(), o, now)
	case order.Cancelled:
		alert, err = alerts.Declined(kernel.NewUUID(), o, now)
	}
	if err != nil {
		return services.Transition{}, err
	}

	if alert != nil {
		if err = uow.NotificationRepository().Add(ctx, alert); err != nil {
			return services.Transition{}, err
		}
	}

	if step.AttachedToTrip {
		if err = trips.SaveActive(ctx, active); err != nil {
			return services.Transition{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Transition{}, err
	}

	return step, nil
}
