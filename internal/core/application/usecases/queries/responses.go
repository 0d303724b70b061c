package queries

import (
	"time"

	"porter/internal/core/domain/model/account"
	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/model/trip"
	"porter/internal/core/domain/services"
)

// OrderResponse is a snapshot of one order.
type OrderResponse struct {
	ID            kernel.UUID
	Customer      order.Customer
	Route         order.Route
	Items         []order.Item
	PaymentAmount float64
	Commission    float64
	Notes         string
	Status        order.Status
	DriverID      *kernel.UUID
	Timeline      order.Timeline
}

func toOrderResponse(o *order.Order) OrderResponse {
	return OrderResponse{
		ID:            o.ID(),
		Customer:      o.Customer(),
		Route:         o.Route(),
		Items:         o.Items(),
		PaymentAmount: o.PaymentAmount(),
		Commission:    o.Commission(),
		Notes:         o.Notes(),
		Status:        o.Status(),
		DriverID:      o.Driver(),
		Timeline:      o.Timeline(),
	}
}

// DriverResponse is a snapshot of the driver record.
// Location is nil until the driver reports a position.
type DriverResponse struct {
	ID              kernel.UUID
	Name            string
	Email           string
	Phone           string
	Vehicle         kernel.Vehicle
	Status          driver.Status
	Rating          float64
	TotalDeliveries int
	TotalEarnings   float64
	Location        *kernel.Location
}

func toDriverResponse(d *driver.Driver) DriverResponse {
	resp := DriverResponse{
		ID:              d.ID(),
		Name:            d.Name(),
		Email:           d.Email(),
		Phone:           d.Phone(),
		Vehicle:         d.Vehicle(),
		Status:          d.Status(),
		Rating:          d.Performance().Rating,
		TotalDeliveries: d.Performance().TotalDeliveries,
		TotalEarnings:   d.Performance().TotalEarnings,
	}
	if loc, ok := d.Location(); ok {
		resp.Location = &loc
	}
	return resp
}

// TripResponse is a snapshot of a trip. Duration is measured up to the query
// time for an open trip.
type TripResponse struct {
	ID            kernel.UUID
	StartTime     time.Time
	StartLocation kernel.Location
	EndTime       time.Time
	EndLocation   *kernel.Location
	Distance      float64
	Earnings      float64
	Orders        []kernel.UUID
	Duration      time.Duration
	Ended         bool
}

func toTripResponse(t *trip.Trip, now time.Time) TripResponse {
	resp := TripResponse{
		ID:            t.ID(),
		StartTime:     t.StartTime(),
		StartLocation: t.StartLocation(),
		EndTime:       t.EndTime(),
		Distance:      t.Distance(),
		Earnings:      t.Earnings(),
		Orders:        t.Orders(),
		Duration:      t.Duration(now),
		Ended:         t.IsEnded(),
	}
	if loc, ended := t.EndLocation(); ended {
		resp.EndLocation = &loc
	}
	return resp
}

type NotificationResponse struct {
	ID        kernel.UUID
	Title     string
	Message   string
	Kind      notification.Kind
	Timestamp time.Time
	Read      bool
}

func toNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID(),
		Title:     n.Title(),
		Message:   n.Message(),
		Kind:      n.Kind(),
		Timestamp: n.Timestamp(),
		Read:      n.IsRead(),
	}
}

// EarningsResponse holds today's figures.
type EarningsResponse struct {
	Date               time.Time
	Earnings           float64
	Deliveries         int
	AveragePerDelivery float64
}

func toEarningsResponse(s services.DailySummary) EarningsResponse {
	return EarningsResponse{
		Date:               s.Date,
		Earnings:           s.Earnings,
		Deliveries:         s.Deliveries,
		AveragePerDelivery: s.AveragePerDelivery(),
	}
}

// SessionResponse describes who is logged in.
type SessionResponse struct {
	AccountID kernel.UUID
	Name      string
	Email     string
	Phone     string
	Vehicle   kernel.Vehicle
	License   string
	Status    account.Status
	Token     string
	StartedAt time.Time
	ExpiresAt time.Time
}

func toSessionResponse(s *account.Session) SessionResponse {
	acc := s.Account()
	return SessionResponse{
		AccountID: acc.ID(),
		Name:      acc.Name(),
		Email:     acc.Email(),
		Phone:     acc.Phone(),
		Vehicle:   acc.Vehicle(),
		License:   acc.LicenseNumber(),
		Status:    acc.Status(),
		Token:     s.Token(),
		StartedAt: s.StartedAt(),
		ExpiresAt: s.ExpiresAt(),
	}
}
