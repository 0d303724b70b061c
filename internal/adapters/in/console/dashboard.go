package console

import (
	"context"
	"strconv"

	"porter/internal/core/application/usecases/queries"
)

func (c *Console) earnings(ctx context.Context, _ string) error {
	e, err := c.handlers.Earnings.Handle(ctx, queries.NewGetEarningsQuery())
	if err != nil {
		return err
	}
	c.printEarnings(e)
	return nil
}

func (c *Console) dashboard(ctx context.Context, _ string) error {
	dash, err := c.handlers.Dashboard.Handle(ctx, queries.NewGetDashboardQuery())
	if err != nil {
		return err
	}

	c.printDriver(dash.Driver)
	c.printEarnings(dash.Today)
	c.printf("orders: %d available, %d active\n", dash.AvailableOrders, dash.ActiveOrders)
	c.printf("notifications: %d unread\n", dash.UnreadNotifications)
	if dash.ActiveTrip != nil {
		c.printTrip(*dash.ActiveTrip)
	}
	return nil
}

func (c *Console) printEarnings(e queries.EarningsResponse) {
	c.printf("today (%s): $%s from %d deliveries, $%s average\n",
		e.Date.Format("Mon Jan 2"), formatMoney(e.Earnings), e.Deliveries, formatMoney(e.AveragePerDelivery))
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
