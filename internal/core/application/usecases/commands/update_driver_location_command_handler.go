package commands

import (
	"context"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/ports"
)

// UpdateDriverLocationCommandHandler records the driver's position.
// While a trip is open the great-circle distance from the previous position
// is added to it.
//
// Example:
//
//	loc, _ := kernel.NewLocation(40.7614, -73.9776, "Rockefeller Center")
//	cmd, _ := NewUpdateDriverLocationCommand(loc)
//	err := handler.Handle(ctx, cmd) // active trip distance grows by ~0.3 km
type UpdateDriverLocationCommandHandler struct {
	uowFactory DriverUoWFactory
	clock      ports.Clock
}

func NewUpdateDriverLocationCommandHandler(uowFactory DriverUoWFactory, clock ports.Clock) UpdateDriverLocationCommandHandler {
	return UpdateDriverLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *UpdateDriverLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDriverLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	drivers := uow.DriverRepository()
	d, err := sessionDriver(ctx, uow.SessionRepository(), drivers, h.clock.Now())
	if err != nil {
		return err
	}

	previous, had, err := d.Relocate(cmd.Location())
	if err != nil {
		return err
	}

	if err = drivers.Update(ctx, d); err != nil {
		return err
	}

	if had {
		if err = h.recordDistance(ctx, uow.TripRepository(), previous, cmd.Location()); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *UpdateDriverLocationCommandHandler) recordDistance(
	ctx context.Context,
	trips ports.TripRepository,
	from kernel.Location,
	to kernel.Location,
) error {
	active, err := trips.GetActive(ctx)
	if err != nil {
		return err
	}
	if active == nil {
		return nil
	}

	delta, err := from.Distance(to)
	if err != nil {
		return err
	}

	if err = active.RecordDistance(delta); err != nil {
		return err
	}

	return trips.SaveActive(ctx, active)
}
