package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"
)

func (c *Console) trip(ctx context.Context, args string) error {
	action, rest, _ := strings.Cut(args, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(action) {
	case "":
		return c.currentTrip(ctx)
	case "start":
		return c.startTrip(ctx, rest)
	case "end":
		return c.endTrip(ctx, rest)
	case "distance":
		return c.recordDistance(ctx, rest)
	case "attach":
		return c.attachOrder(ctx, rest)
	default:
		return fmt.Errorf("unknown trip action %q", action)
	}
}

func (c *Console) currentTrip(ctx context.Context) error {
	t, err := c.handlers.CurrentTrip.Handle(ctx, queries.NewGetCurrentTripQuery())
	if err != nil {
		return err
	}
	if t == nil {
		c.print("no active trip\n")
		return nil
	}
	c.printTrip(*t)
	return nil
}

func (c *Console) startTrip(ctx context.Context, args string) error {
	location, err := parseLocation(args)
	if err != nil {
		return err
	}

	cmd, err := commands.NewStartTripCommand(kernel.NewUUID(), location)
	if err != nil {
		return err
	}

	t, err := c.handlers.StartTrip.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printf("trip started at %s from %s\n", t.StartTime().Format("15:04"), location.Address())
	return nil
}

func (c *Console) endTrip(ctx context.Context, args string) error {
	location, err := parseLocation(args)
	if err != nil {
		return err
	}

	cmd, err := commands.NewEndTripCommand(location)
	if err != nil {
		return err
	}

	t, err := c.handlers.EndTrip.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	if t == nil {
		c.print("no active trip\n")
		return nil
	}

	c.printf("trip ended: %.2f km, $%.2f over %d orders\n", t.Distance(), t.Earnings(), len(t.Orders()))
	return nil
}

func (c *Console) recordDistance(ctx context.Context, args string) error {
	km, err := strconv.ParseFloat(args, 64)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("distance", err)
	}

	cmd, err := commands.NewRecordTripDistanceCommand(km)
	if err != nil {
		return err
	}
	return c.handlers.RecordDistance.Handle(ctx, cmd)
}

func (c *Console) attachOrder(ctx context.Context, args string) error {
	id, err := resolveRef(args, c.lastOrders)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAttachOrderToTripCommand(id)
	if err != nil {
		return err
	}
	return c.handlers.AttachOrder.Handle(ctx, cmd)
}

func (c *Console) trips(ctx context.Context, _ string) error {
	history, err := c.handlers.TripHistory.Handle(ctx, queries.NewGetTripHistoryQuery())
	if err != nil {
		return err
	}
	if len(history) == 0 {
		c.print("no completed trips\n")
		return nil
	}

	for _, t := range history {
		c.printTrip(t)
	}
	return nil
}

func (c *Console) printTrip(t queries.TripResponse) {
	state := "active"
	if t.Ended {
		state = "ended"
	}
	c.printf("%s trip from %s: %.2f km, $%.2f, %d orders, %s\n",
		state, t.StartLocation.Address(), t.Distance, t.Earnings, len(t.Orders),
		t.Duration.Round(time.Minute))
}
