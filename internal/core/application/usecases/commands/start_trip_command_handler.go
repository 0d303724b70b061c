package commands

import (
	"context"

	"porter/internal/core/domain/model/trip"
	"porter/internal/core/ports"
)

// StartTripCommandHandler opens a trip for the logged-in driver.
// Returns trip.ErrTripAlreadyActive when a trip is already open.
type StartTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewStartTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) StartTripCommandHandler {
	return StartTripCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *StartTripCommandHandler) Handle(ctx context.Context, cmd StartTripCommand) (*trip.Trip, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	if _, err := activeSession(ctx, uow.SessionRepository(), now); err != nil {
		return nil, err
	}

	trips := uow.TripRepository()
	active, err := trips.GetActive(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, trip.ErrTripAlreadyActive
	}

	t, err := trip.NewTrip(cmd.TripID(), cmd.Location(), now)
	if err != nil {
		return nil, err
	}

	if err = trips.SaveActive(ctx, t); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return t, nil
}

// EndTripCommandHandler closes the active trip and moves it to history.
// Without an active trip it does nothing and returns a nil trip.
type EndTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewEndTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) EndTripCommandHandler {
	return EndTripCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *EndTripCommandHandler) Handle(ctx context.Context, cmd EndTripCommand) (*trip.Trip, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock.Now()
	if _, err := activeSession(ctx, uow.SessionRepository(), now); err != nil {
		return nil, err
	}

	trips := uow.TripRepository()
	active, err := trips.GetActive(ctx)
	if err != nil || active == nil {
		return nil, err
	}

	if err = active.End(cmd.Location(), now); err != nil {
		return nil, err
	}

	if err = trips.Archive(ctx, active); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return active, nil
}

// RecordTripDistanceCommandHandler adds distance to the active trip.
// Without an active trip the distance is dropped.
type RecordTripDistanceCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewRecordTripDistanceCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) RecordTripDistanceCommandHandler {
	return RecordTripDistanceCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *RecordTripDistanceCommandHandler) Handle(ctx context.Context, cmd RecordTripDistanceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateActiveTrip(ctx, h.uowFactory, h.clock, func(_ context.Context, _ TripUoW, t *trip.Trip) error {
		return t.RecordDistance(cmd.Delta())
	})
}

// AttachOrderToTripCommandHandler attaches a known order to the active trip.
// Returns *errs.ObjectNotFoundError for an unknown order.
type AttachOrderToTripCommandHandler struct {
	uowFactory TripUoWFactory
	clock      ports.Clock
}

func NewAttachOrderToTripCommandHandler(uowFactory TripUoWFactory, clock ports.Clock) AttachOrderToTripCommandHandler {
	return AttachOrderToTripCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *AttachOrderToTripCommandHandler) Handle(ctx context.Context, cmd AttachOrderToTripCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return updateActiveTrip(ctx, h.uowFactory, h.clock, func(ctx context.Context, uow TripUoW, t *trip.Trip) error {
		if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
			return err
		}
		return t.AttachOrder(cmd.OrderID())
	})
}

func updateActiveTrip(
	ctx context.Context,
	uowFactory TripUoWFactory,
	clock ports.Clock,
	change func(ctx context.Context, uow TripUoW, t *trip.Trip) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := activeSession(ctx, uow.SessionRepository(), clock.Now()); err != nil {
		return err
	}

	trips := uow.TripRepository()
	active, err := trips.GetActive(ctx)
	if err != nil || active == nil {
		return err
	}

	if err = change(ctx, uow, active); err != nil {
		return err
	}

	if err = trips.SaveActive(ctx, active); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
