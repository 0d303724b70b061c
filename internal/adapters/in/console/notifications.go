package console

import (
	"context"
	"strings"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/application/usecases/queries"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/pkg/errs"
)

func (c *Console) notifications(ctx context.Context, _ string) error {
	resp, err := c.handlers.Notifications.Handle(ctx, queries.NewGetNotificationsQuery())
	if err != nil {
		return err
	}

	c.lastNotifications = make([]kernel.UUID, 0, len(resp.Items))
	c.printf("%d unread\n", resp.Unread)
	for i, n := range resp.Items {
		c.lastNotifications = append(c.lastNotifications, n.ID)
		marker := "*"
		if n.Read {
			marker = " "
		}
		c.printf("%s%d. [%s] %s %s: %s\n", marker, i+1, n.Kind, n.Timestamp.Format("15:04"), n.Title, n.Message)
	}
	return nil
}

func (c *Console) notify(ctx context.Context, args string) error {
	kindArg, rest, _ := strings.Cut(args, " ")
	kind, err := notification.ParseKind(kindArg)
	if err != nil {
		return err
	}

	title, message, ok := strings.Cut(rest, "|")
	if !ok {
		return errs.NewValueIsRequiredError("message")
	}

	cmd, err := commands.NewPushNotificationCommand(strings.TrimSpace(title), strings.TrimSpace(message), kind)
	if err != nil {
		return err
	}

	if _, err = c.handlers.PushNotification.Handle(ctx, cmd); err != nil {
		return err
	}
	c.print("notification pushed\n")
	return nil
}

func (c *Console) read(ctx context.Context, args string) error {
	if strings.EqualFold(strings.TrimSpace(args), "all") {
		n, err := c.handlers.MarkAllRead.Handle(ctx, commands.NewMarkAllNotificationsReadCommand())
		if err != nil {
			return err
		}
		c.printf("%d marked as read\n", n)
		return nil
	}

	id, err := resolveRef(args, c.lastNotifications)
	if err != nil {
		return err
	}

	cmd, err := commands.NewMarkNotificationReadCommand(id)
	if err != nil {
		return err
	}
	return c.handlers.MarkRead.Handle(ctx, cmd)
}

func (c *Console) sos(ctx context.Context, _ string) error {
	alert, err := c.handlers.SendSOS.Handle(ctx, commands.NewSendSOSAlertCommand())
	if err != nil {
		return err
	}
	c.printf("%s: %s\n", alert.Title(), alert.Message())
	return nil
}

func (c *Console) issue(ctx context.Context, args string) error {
	cmd, err := commands.NewReportIssueCommand(args)
	if err != nil {
		return err
	}

	alert, err := c.handlers.ReportIssue.Handle(ctx, cmd)
	if err != nil {
		return err
	}
	c.printf("%s: %s\n", alert.Title(), alert.Message())
	return nil
}
