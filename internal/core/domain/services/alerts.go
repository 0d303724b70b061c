package services

import (
	"fmt"
	"strings"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/errs"
)

// Titles and fixed texts of the notifications the core raises by itself.
const (
	SOSTitle   = "SOS Alert Sent"
	SOSMessage = "Emergency services and Porter support have been notified of your location."

	IssueTitle = "Issue Reported"

	DeliveredTitle    = "Order Delivered"
	DeclinedTitle     = "Order Declined"
	DailySummaryTitle = "Daily Summary"
)

// Alerts builds the notifications the core raises by itself.
type Alerts struct{}

func NewAlerts() Alerts {
	return Alerts{}
}

// SOS builds the warning pushed when the driver raises an emergency.
func (Alerts) SOS(id kernel.UUID, at time.Time) (*notification.Notification, error) {
	return notification.NewNotification(id, SOSTitle, SOSMessage, notification.Warning, at)
}

// Issue builds the confirmation for a driver's issue report.
// The description is embedded exactly as given.
func (Alerts) Issue(id kernel.UUID, description string, at time.Time) (*notification.Notification, error) {
	if strings.TrimSpace(description) == "" {
		return nil, errs.NewValueIsRequiredError("issue")
	}
	message := `Your report: "` + description + `" has been submitted to Porter support.`
	return notification.NewNotification(id, IssueTitle, message, notification.Info, at)
}

// Delivered congratulates the driver and states the commission earned.
func (Alerts) Delivered(id kernel.UUID, o *order.Order, at time.Time) (*notification.Notification, error) {
	message := fmt.Sprintf("Order %s delivered successfully! You earned $%.2f.", o.ID(), o.Commission())
	return notification.NewNotification(id, DeliveredTitle, message, notification.Success, at)
}

// Declined confirms that an order was declined.
func (Alerts) Declined(id kernel.UUID, o *order.Order, at time.Time) (*notification.Notification, error) {
	message := fmt.Sprintf("Order %s has been declined.", o.ID())
	return notification.NewNotification(id, DeclinedTitle, message, notification.Info, at)
}

// Summary reports the day's figures.
func (Alerts) Summary(id kernel.UUID, summary DailySummary, at time.Time) (*notification.Notification, error) {
	message := fmt.Sprintf("%s: %d deliveries, $%.2f earned, $%.2f per delivery.",
		summary.Date.Format(time.DateOnly), summary.Deliveries, summary.Earnings, summary.AveragePerDelivery())
	return notification.NewNotification(id, DailySummaryTitle, message, notification.Info, at)
}
