package voice

import (
	"context"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/services"
)

type SessionReader interface {
	Handle(ctx context.Context, query queries.GetCurrentSessionQuery) (queries.SessionResponse, error)
}

type OrderLister interface {
	Handle(ctx context.Context, query queries.GetOrdersQuery) ([]queries.OrderResponse, error)
}

type EarningsReader interface {
	Handle(ctx context.Context, query queries.GetEarningsQuery) (queries.EarningsResponse, error)
}

type OrderStatusChanger interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (services.Transition, error)
}

type DriverStatusSetter interface {
	Handle(ctx context.Context, cmd commands.SetDriverStatusCommand) (driver.Status, error)
}

type SOSSender interface {
	Handle(ctx context.Context, cmd commands.SendSOSAlertCommand) (*notification.Notification, error)
}

// Handlers groups the core operations a Dispatcher drives.
type Handlers struct {
	Session      SessionReader
	Orders       OrderLister
	Earnings     EarningsReader
	ChangeStatus OrderStatusChanger
	SetStatus    DriverStatusSetter
	SOS          SOSSender
}
