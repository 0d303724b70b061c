package console

import (
	"context"
	"strings"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/services"
)

func (c *Console) orders(ctx context.Context, args string) error {
	filter := queries.AvailableOrders
	if args != "" {
		var err error
		if filter, err = queries.ParseOrderFilter(args); err != nil {
			return err
		}
	}

	query, err := queries.NewGetOrdersQuery(filter)
	if err != nil {
		return err
	}

	orders, err := c.handlers.Orders.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.lastOrders = make([]kernel.UUID, 0, len(orders))
	if len(orders) == 0 {
		c.printf("no %s orders\n", filter)
		return nil
	}

	for i, o := range orders {
		c.lastOrders = append(c.lastOrders, o.ID)
		c.printf("%d. %-10s %-14s %s -> %s  $%.2f (you earn $%.2f)\n",
			i+1, o.Status, o.Customer.Name(),
			o.Route.Pickup().Address(), o.Route.Dropoff().Address(),
			o.PaymentAmount, o.Commission)
	}
	return nil
}

func (c *Console) order(ctx context.Context, args string) error {
	id, err := resolveRef(args, c.lastOrders)
	if err != nil {
		return err
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return err
	}

	o, err := c.handlers.Order.Handle(ctx, query)
	if err != nil {
		return err
	}

	c.printf("order %s (%s)\n", o.ID, o.Status)
	c.printf("  customer  %s, %s\n", o.Customer.Name(), o.Customer.Phone())
	c.printf("  pickup    %s\n", o.Route.Pickup().Address())
	c.printf("  dropoff   %s\n", o.Route.Dropoff().Address())
	c.printf("  route     %.1f km, about %d min\n", o.Route.DistanceKm(), o.Route.EstimatedMinutes())
	for _, item := range o.Items {
		c.printf("  %dx %s  $%.2f\n", item.Quantity(), item.Name(), item.Subtotal())
		if item.Notes() != "" {
			c.printf("      (%s)\n", item.Notes())
		}
	}
	c.printf("  payment   $%.2f (you earn $%.2f)\n", o.PaymentAmount, o.Commission)
	if o.Notes != "" {
		c.printf("  notes     %s\n", o.Notes)
	}
	return nil
}

func (c *Console) accept(ctx context.Context, args string) error {
	id, err := resolveRef(args, c.lastOrders)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAcceptOrderCommand(id)
	if err != nil {
		return err
	}

	step, err := c.handlers.ChangeOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printTransition(step)
	return nil
}

func (c *Console) decline(ctx context.Context, args string) error {
	id, err := resolveRef(args, c.lastOrders)
	if err != nil {
		return err
	}

	cmd, err := commands.NewDeclineOrderCommand(id)
	if err != nil {
		return err
	}

	step, err := c.handlers.ChangeOrderStatus.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printTransition(step)
	return nil
}

func (c *Console) advance(ctx context.Context, args string) error {
	id, err := resolveRef(args, c.lastOrders)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return err
	}

	step, err := c.handlers.AdvanceOrder.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printTransition(step)
	return nil
}

func (c *Console) printTransition(step services.Transition) {
	var b strings.Builder
	b.WriteString("order ")
	b.WriteString(step.From.String())
	b.WriteString(" -> ")
	b.WriteString(step.To.String())
	if step.Delivered() {
		b.WriteString(", credited $")
		b.WriteString(formatMoney(step.Commission))
	}
	if step.AttachedToTrip {
		b.WriteString(", added to the current trip")
	}
	b.WriteString("\n")
	c.print(b.String())
}
