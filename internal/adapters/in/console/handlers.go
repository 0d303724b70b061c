package console

import (
	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
)

// Handlers is the set of core operations reachable from the console.
type Handlers struct {
	RegisterDriver    *commands.RegisterDriverCommandHandler
	ReviewAccount     *commands.ReviewAccountCommandHandler
	Authenticate      *commands.AuthenticateCommandHandler
	EndSession        *commands.EndSessionCommandHandler
	UpdateProfile     *commands.UpdateProfileCommandHandler
	ToggleStatus      *commands.ToggleDriverStatusCommandHandler
	SetStatus         *commands.SetDriverStatusCommandHandler
	UpdateLocation    *commands.UpdateDriverLocationCommandHandler
	ChangeOrderStatus *commands.ChangeOrderStatusCommandHandler
	AdvanceOrder      *commands.AdvanceOrderCommandHandler
	StartTrip         *commands.StartTripCommandHandler
	EndTrip           *commands.EndTripCommandHandler
	RecordDistance    *commands.RecordTripDistanceCommandHandler
	AttachOrder       *commands.AttachOrderToTripCommandHandler
	PushNotification  *commands.PushNotificationCommandHandler
	MarkRead          *commands.MarkNotificationReadCommandHandler
	MarkAllRead       *commands.MarkAllNotificationsReadCommandHandler
	SendSOS           *commands.SendSOSAlertCommandHandler
	ReportIssue       *commands.ReportIssueCommandHandler

	CurrentSession *queries.GetCurrentSessionQueryHandler
	Orders         *queries.GetOrdersQueryHandler
	Order          *queries.GetOrderQueryHandler
	Driver         *queries.GetDriverQueryHandler
	CurrentTrip    *queries.GetCurrentTripQueryHandler
	TripHistory    *queries.GetTripHistoryQueryHandler
	Notifications  *queries.GetNotificationsQueryHandler
	Earnings       *queries.GetEarningsQueryHandler
	Dashboard      *queries.GetDashboardQueryHandler
}
