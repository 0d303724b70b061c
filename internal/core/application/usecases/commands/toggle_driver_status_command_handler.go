package commands

import (
	"context"

	"porter/internal/core/domain/model/driver"
	"porter/internal/core/ports"
)

// ToggleDriverStatusCommandHandler flips the working status of the logged-in driver.
type ToggleDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewToggleDriverStatusCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) ToggleDriverStatusCommandHandler {
	return ToggleDriverStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the status the driver ended up in.
func (h *ToggleDriverStatusCommandHandler) Handle(ctx context.Context, cmd ToggleDriverStatusCommand) (driver.Status, error) {
	if err := cmd.Validate(); err != nil {
		return driver.Unknown, err
	}

	return updateDriver(ctx, h.uowFactory, h.clock, func(d *driver.Driver) error {
		d.Toggle()
		return nil
	})
}

// SetDriverStatusCommandHandler sets the working status of the logged-in driver.
// Setting the status the driver already has is accepted.
type SetDriverStatusCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewSetDriverStatusCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) SetDriverStatusCommandHandler {
	return SetDriverStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *SetDriverStatusCommandHandler) Handle(ctx context.Context, cmd SetDriverStatusCommand) (driver.Status, error) {
	if err := cmd.Validate(); err != nil {
		return driver.Unknown, err
	}

	return updateDriver(ctx, h.uowFactory, h.clock, func(d *driver.Driver) error {
		return d.SetStatus(cmd.Status())
	})
}

func updateDriver(
	ctx context.Context,
	uowFactory DriverUoWFactory,
	clock ports.Clock,
	change func(d *driver.Driver) error,
) (driver.Status, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return driver.Unknown, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drivers := uow.DriverRepository()
	d, err := sessionDriver(ctx, uow.SessionRepository(), drivers, clock.Now())
	if err != nil {
		return driver.Unknown, err
	}

	if err = change(d); err != nil {
		return driver.Unknown, err
	}

	if err = drivers.Update(ctx, d); err != nil {
		return driver.Unknown, err
	}

	if err = uow.Commit(ctx); err != nil {
		return driver.Unknown, err
	}

	return d.Status(), nil
}
