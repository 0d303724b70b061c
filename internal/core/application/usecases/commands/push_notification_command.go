package commands

import (
	"errors"
	"strings"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/pkg/errs"
	"porter/internal/pkg/guard"
)

var (
	ErrPushNotificationCommandIsNotConstructed = errors.New(
		"PushNotificationCommand must be created via NewPushNotificationCommand constructor",
	)
	ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
		"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
	)
	ErrMarkAllNotificationsReadCommandIsNotConstructed = errors.New(
		"MarkAllNotificationsReadCommand must be created via NewMarkAllNotificationsReadCommand constructor",
	)
	ErrSendSOSAlertCommandIsNotConstructed = errors.New(
		"SendSOSAlertCommand must be created via NewSendSOSAlertCommand constructor",
	)
	ErrReportIssueCommandIsNotConstructed = errors.New(
		"ReportIssueCommand must be created via NewReportIssueCommand constructor",
	)
)

// PushNotificationCommand adds a notification to the queue.
// The message is kept exactly as given.
type PushNotificationCommand struct { //nolint:recvcheck //using for validation
	title   string
	message string
	kind    notification.Kind

	guard guard.ConstructorGuard
}

func NewPushNotificationCommand(title string, message string, kind notification.Kind) (PushNotificationCommand, error) {
	cmd := PushNotificationCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTitle(title),
		cmd.setKind(kind),
	); err != nil {
		return PushNotificationCommand{}, err
	}

	return cmd, nil
}

func (c PushNotificationCommand) Validate() error {
	return c.guard.Validate(ErrPushNotificationCommandIsNotConstructed)
}

func (c PushNotificationCommand) Title() string {
	return c.title
}

func (c PushNotificationCommand) Message() string {
	return c.message
}

func (c PushNotificationCommand) Kind() notification.Kind {
	return c.kind
}

func (c *PushNotificationCommand) setTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return errs.NewValueIsRequiredError("title")
	}
	c.title = title
	return nil
}

func (c *PushNotificationCommand) setKind(kind notification.Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	c.kind = kind
	return nil
}

// MarkNotificationReadCommand marks one notification as read.
type MarkNotificationReadCommand struct { //nolint:recvcheck //using for validation
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) NotificationID() kernel.UUID {
	return c.notificationID
}

// MarkAllNotificationsReadCommand clears the unread count.
type MarkAllNotificationsReadCommand struct {
	guard guard.ConstructorGuard
}

func NewMarkAllNotificationsReadCommand() MarkAllNotificationsReadCommand {
	return MarkAllNotificationsReadCommand{guard: guard.NewConstructorGuard()}
}

func (c MarkAllNotificationsReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkAllNotificationsReadCommandIsNotConstructed)
}

// SendSOSAlertCommand raises an emergency alert.
type SendSOSAlertCommand struct {
	guard guard.ConstructorGuard
}

func NewSendSOSAlertCommand() SendSOSAlertCommand {
	return SendSOSAlertCommand{guard: guard.NewConstructorGuard()}
}

func (c SendSOSAlertCommand) Validate() error {
	return c.guard.Validate(ErrSendSOSAlertCommandIsNotConstructed)
}

// ReportIssueCommand files a free-text problem report.
type ReportIssueCommand struct { //nolint:recvcheck //using for validation
	issue string

	guard guard.ConstructorGuard
}

func NewReportIssueCommand(issue string) (ReportIssueCommand, error) {
	if strings.TrimSpace(issue) == "" {
		return ReportIssueCommand{}, errs.NewValueIsRequiredError("issue")
	}

	return ReportIssueCommand{
		issue: issue,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ReportIssueCommand) Validate() error {
	return c.guard.Validate(ErrReportIssueCommandIsNotConstructed)
}

func (c ReportIssueCommand) Issue() string {
	return c.issue
}
