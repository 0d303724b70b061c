package commands

import (
	"context"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/services"
	"porter/internal/core/ports"
)

// PushNotificationCommandHandler puts a notification at the head of the queue.
// Pushing needs no session since the queue is also fed by background jobs.
type PushNotificationCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

func NewPushNotificationCommandHandler(uowFactory NotificationUoWFactory, clock ports.Clock) PushNotificationCommandHandler {
	return PushNotificationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the ID of the new notification.
func (h *PushNotificationCommandHandler) Handle(ctx context.Context, cmd PushNotificationCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	n, err := notification.NewNotification(kernel.NewUUID(), cmd.Title(), cmd.Message(), cmd.Kind(), h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return n.ID(), nil
}

// MarkNotificationReadCommandHandler marks one notification as read.
// An unknown ID is ignored.
type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory, clock ports.Clock) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h *MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := markRead(ctx, h.uowFactory, h.clock, func(n *notification.Notification) bool {
		return n.ID().IsEqual(cmd.NotificationID())
	})
	return err
}

// MarkAllNotificationsReadCommandHandler marks every unread notification as read.
type MarkAllNotificationsReadCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
}

func NewMarkAllNotificationsReadCommandHandler(
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
) MarkAllNotificationsReadCommandHandler {
	return MarkAllNotificationsReadCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns how many notifications changed.
func (h *MarkAllNotificationsReadCommandHandler) Handle(ctx context.Context, cmd MarkAllNotificationsReadCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return markRead(ctx, h.uowFactory, h.clock, func(*notification.Notification) bool {
		return true
	})
}

func markRead(
	ctx context.Context,
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
	match func(n *notification.Notification) bool,
) (int, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := activeSession(ctx, uow.SessionRepository(), clock.Now()); err != nil {
		return 0, err
	}

	notifications := uow.NotificationRepository()
	all, err := notifications.GetAll(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, n := range all {
		if n.IsRead() || !match(n) {
			continue
		}
		n.MarkRead()
		if err = notifications.Update(ctx, n); err != nil {
			return 0, err
		}
		changed++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return changed, nil
}

// SendSOSAlertCommandHandler pushes the SOS warning for the logged-in driver.
type SendSOSAlertCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
	alerts     services.Alerts
}

func NewSendSOSAlertCommandHandler(uowFactory NotificationUoWFactory, clock ports.Clock) SendSOSAlertCommandHandler {
	return SendSOSAlertCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		alerts:     services.NewAlerts(),
	}
}

func (h *SendSOSAlertCommandHandler) Handle(ctx context.Context, cmd SendSOSAlertCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return pushAlert(ctx, h.uowFactory, h.clock, func(at time.Time) (*notification.Notification, error) {
		return h.alerts.SOS(kernel.NewUUID(), at)
	})
}

// ReportIssueCommandHandler pushes the confirmation of an issue report.
type ReportIssueCommandHandler struct {
	uowFactory NotificationUoWFactory
	clock      ports.Clock
	alerts     services.Alerts
}

func NewReportIssueCommandHandler(uowFactory NotificationUoWFactory, clock ports.Clock) ReportIssueCommandHandler {
	return ReportIssueCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		alerts:     services.NewAlerts(),
	}
}

func (h *ReportIssueCommandHandler) Handle(ctx context.Context, cmd ReportIssueCommand) (*notification.Notification, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	return pushAlert(ctx, h.uowFactory, h.clock, func(at time.Time) (*notification.Notification, error) {
		return h.alerts.Issue(kernel.NewUUID(), cmd.Issue(), at)
	})
}

func pushAlert(
	ctx context.Context,
	uowFactory NotificationUoWFactory,
	clock ports.Clock,
	build func(at time.Time) (*notification.Notification, error),
) (*notification.Notification, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := clock.Now()
	if _, err := activeSession(ctx, uow.SessionRepository(), now); err != nil {
		return nil, err
	}

	n, err := build(now)
	if err != nil {
		return nil, err
	}

	if err = uow.NotificationRepository().Add(ctx, n); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return n, nil
}
