package commands

import (
	"context"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/services"
	"porter/internal/core/ports"
)

// PublishDailySummaryCommandHandler totals the orders delivered today and
// pushes the result as a "Daily Summary" notification.
// A day without deliveries is still reported.
type PublishDailySummaryCommandHandler struct {
	uowFactory SummaryUoWFactory
	clock      ports.Clock
	calculator services.EarningsCalculator
	alerts     services.Alerts
}

func NewPublishDailySummaryCommandHandler(uowFactory SummaryUoWFactory, clock ports.Clock) PublishDailySummaryCommandHandler {
	return PublishDailySummaryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		calculator: services.NewEarningsCalculator(),
		alerts:     services.NewAlerts(),
	}
}

func (h *PublishDailySummaryCommandHandler) Handle(
	ctx context.Context,
	cmd PublishDailySummaryCommand,
) (services.DailySummary, error) {
	if err := cmd.Validate(); err != nil {
		return services.DailySummary{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.DailySummary{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAll(ctx)
	if err != nil {
		return services.DailySummary{}, err
	}

	now := h.clock.Now()
	summary := h.calculator.Summarize(orders, now)

	n, err := h.alerts.Summary(kernel.NewUUID(), summary, now)
	if err != nil {
		return services.DailySummary{}, err
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return services.DailySummary{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.DailySummary{}, err
	}

	return summary, nil
}
