package cmd

import (
	"io"
	"log/slog"

	"porter/internal/adapters/in/console"
	"porter/internal/adapters/in/voice"
	"porter/internal/adapters/out/memory"
	"porter/internal/adapters/out/security"
	"porter/internal/adapters/out/seed"
	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/ports"
	"porter/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	uowFactory *memory.UnitOfWorkFactory
	clock      ports.Clock
	hasher     ports.PasswordHasher
	tokens     ports.TokenIssuer
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, clock ports.Clock, logger *slog.Logger) (*CompositionRoot, error) {
	tokens, err := security.NewJWTIssuer(config.TokenSecret, config.TokenTTL)
	if err != nil {
		return nil, err
	}

	return &CompositionRoot{
		config:     config,
		uowFactory: memory.NewUnitOfWorkFactory(memory.NewStore()).WithLogger(logger),
		clock:      clock,
		hasher:     security.NewBcryptHasher(config.BcryptCost),
		tokens:     tokens,
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) tripUoWFactory() commands.TripUoWFactory {
	return FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) notificationUoWFactory() commands.NotificationUoWFactory {
	return FuncNotificationUoWFactory(func() commands.NotificationUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) summaryUoWFactory() commands.SummaryUoWFactory {
	return FuncSummaryUoWFactory(func() commands.SummaryUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) uowFactoryAll() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateRegisterDriverCommandHandler() *commands.RegisterDriverCommandHandler {
	h := commands.NewRegisterDriverCommandHandler(c.accountUoWFactory(), c.hasher, c.clock)
	return &h
}

func (c *CompositionRoot) CreateReviewAccountCommandHandler() *commands.ReviewAccountCommandHandler {
	h := commands.NewReviewAccountCommandHandler(c.accountUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() *commands.AuthenticateCommandHandler {
	h := commands.NewAuthenticateCommandHandler(c.accountUoWFactory(), c.hasher, c.tokens, c.clock)
	return &h
}

func (c *CompositionRoot) CreateEndSessionCommandHandler() *commands.EndSessionCommandHandler {
	h := commands.NewEndSessionCommandHandler(c.sessionUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateExpireSessionCommandHandler() *commands.ExpireSessionCommandHandler {
	h := commands.NewExpireSessionCommandHandler(c.sessionUoWFactory(), c.tokens, c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() *commands.UpdateProfileCommandHandler {
	h := commands.NewUpdateProfileCommandHandler(c.accountUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateAddOrderCommandHandler() *commands.AddOrderCommandHandler {
	h := commands.NewAddOrderCommandHandler(c.orderUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateToggleDriverStatusCommandHandler() *commands.ToggleDriverStatusCommandHandler {
	h := commands.NewToggleDriverStatusCommandHandler(c.driverUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateSetDriverStatusCommandHandler() *commands.SetDriverStatusCommandHandler {
	h := commands.NewSetDriverStatusCommandHandler(c.driverUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() *commands.UpdateDriverLocationCommandHandler {
	h := commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() *commands.ChangeOrderStatusCommandHandler {
	h := commands.NewChangeOrderStatusCommandHandler(c.uowFactoryAll(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateAdvanceOrderCommandHandler() *commands.AdvanceOrderCommandHandler {
	h := commands.NewAdvanceOrderCommandHandler(c.uowFactoryAll(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateStartTripCommandHandler() *commands.StartTripCommandHandler {
	h := commands.NewStartTripCommandHandler(c.tripUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateEndTripCommandHandler() *commands.EndTripCommandHandler {
	h := commands.NewEndTripCommandHandler(c.tripUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateRecordTripDistanceCommandHandler() *commands.RecordTripDistanceCommandHandler {
	h := commands.NewRecordTripDistanceCommandHandler(c.tripUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateAttachOrderToTripCommandHandler() *commands.AttachOrderToTripCommandHandler {
	h := commands.NewAttachOrderToTripCommandHandler(c.tripUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreatePushNotificationCommandHandler() *commands.PushNotificationCommandHandler {
	h := commands.NewPushNotificationCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateMarkNotificationReadCommandHandler() *commands.MarkNotificationReadCommandHandler {
	h := commands.NewMarkNotificationReadCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateMarkAllNotificationsReadCommandHandler() *commands.MarkAllNotificationsReadCommandHandler {
	h := commands.NewMarkAllNotificationsReadCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateSendSOSAlertCommandHandler() *commands.SendSOSAlertCommandHandler {
	h := commands.NewSendSOSAlertCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateReportIssueCommandHandler() *commands.ReportIssueCommandHandler {
	h := commands.NewReportIssueCommandHandler(c.notificationUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreatePublishDailySummaryCommandHandler() *commands.PublishDailySummaryCommandHandler {
	h := commands.NewPublishDailySummaryCommandHandler(c.summaryUoWFactory(), c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetCurrentSessionQueryHandler() *queries.GetCurrentSessionQueryHandler {
	h := queries.NewGetCurrentSessionQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() *queries.GetOrdersQueryHandler {
	h := queries.NewGetOrdersQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() *queries.GetOrderQueryHandler {
	h := queries.NewGetOrderQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() *queries.GetDriverQueryHandler {
	h := queries.NewGetDriverQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetCurrentTripQueryHandler() *queries.GetCurrentTripQueryHandler {
	h := queries.NewGetCurrentTripQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetTripHistoryQueryHandler() *queries.GetTripHistoryQueryHandler {
	h := queries.NewGetTripHistoryQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetNotificationsQueryHandler() *queries.GetNotificationsQueryHandler {
	h := queries.NewGetNotificationsQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetEarningsQueryHandler() *queries.GetEarningsQueryHandler {
	h := queries.NewGetEarningsQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() *queries.GetDashboardQueryHandler {
	h := queries.NewGetDashboardQueryHandler(c.uowFactory, c.clock)
	return &h
}

func (c *CompositionRoot) CreateSeedLoader() *seed.Loader {
	return seed.NewLoader(c.uowFactory, c.hasher, c.clock, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePublishDailySummaryCommandHandler(),
		c.CreateExpireSessionCommandHandler(),
		jobs.Schedules{
			DailySummary:  c.config.SummarySchedule,
			SessionExpiry: c.config.SessionSweepSchedule,
		},
		c.logger,
	)
}

func (c *CompositionRoot) CreateVoiceDispatcher() *voice.Dispatcher {
	return voice.NewDispatcher(voice.NewClassifier(), voice.Handlers{
		Session:      c.CreateGetCurrentSessionQueryHandler(),
		Orders:       c.CreateGetOrdersQueryHandler(),
		Earnings:     c.CreateGetEarningsQueryHandler(),
		ChangeStatus: c.CreateChangeOrderStatusCommandHandler(),
		SetStatus:    c.CreateSetDriverStatusCommandHandler(),
		SOS:          c.CreateSendSOSAlertCommandHandler(),
	})
}

func (c *CompositionRoot) CreateConsole(out io.Writer) *console.Console {
	handlers := console.Handlers{
		RegisterDriver:    c.CreateRegisterDriverCommandHandler(),
		ReviewAccount:     c.CreateReviewAccountCommandHandler(),
		Authenticate:      c.CreateAuthenticateCommandHandler(),
		EndSession:        c.CreateEndSessionCommandHandler(),
		UpdateProfile:     c.CreateUpdateProfileCommandHandler(),
		ToggleStatus:      c.CreateToggleDriverStatusCommandHandler(),
		SetStatus:         c.CreateSetDriverStatusCommandHandler(),
		UpdateLocation:    c.CreateUpdateDriverLocationCommandHandler(),
		ChangeOrderStatus: c.CreateChangeOrderStatusCommandHandler(),
		AdvanceOrder:      c.CreateAdvanceOrderCommandHandler(),
		StartTrip:         c.CreateStartTripCommandHandler(),
		EndTrip:           c.CreateEndTripCommandHandler(),
		RecordDistance:    c.CreateRecordTripDistanceCommandHandler(),
		AttachOrder:       c.CreateAttachOrderToTripCommandHandler(),
		PushNotification:  c.CreatePushNotificationCommandHandler(),
		MarkRead:          c.CreateMarkNotificationReadCommandHandler(),
		MarkAllRead:       c.CreateMarkAllNotificationsReadCommandHandler(),
		SendSOS:           c.CreateSendSOSAlertCommandHandler(),
		ReportIssue:       c.CreateReportIssueCommandHandler(),
		CurrentSession:    c.CreateGetCurrentSessionQueryHandler(),
		Orders:            c.CreateGetOrdersQueryHandler(),
		Order:             c.CreateGetOrderQueryHandler(),
		Driver:            c.CreateGetDriverQueryHandler(),
		CurrentTrip:       c.CreateGetCurrentTripQueryHandler(),
		TripHistory:       c.CreateGetTripHistoryQueryHandler(),
		Notifications:     c.CreateGetNotificationsQueryHandler(),
		Earnings:          c.CreateGetEarningsQueryHandler(),
		Dashboard:         c.CreateGetDashboardQueryHandler(),
	}
	return console.New(handlers, c.CreateVoiceDispatcher(), out, c.logger)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncNotificationUoWFactory func() commands.NotificationUoW

func (f FuncNotificationUoWFactory) Create() commands.NotificationUoW {
	return f()
}

type FuncSummaryUoWFactory func() commands.SummaryUoW

func (f FuncSummaryUoWFactory) Create() commands.SummaryUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
