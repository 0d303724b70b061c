package services

import (
	"time"

	"porter/internal/core/domain/model/order"
)

// DailySummary is what the driver earned on one calendar day.
type DailySummary struct {
	Date       time.Time
	Earnings   float64
	Deliveries int
}

// AveragePerDelivery returns Earnings / Deliveries, or 0 when nothing was delivered.
func (s DailySummary) AveragePerDelivery() float64 {
	if s.Deliveries == 0 {
		return 0
	}
	return s.Earnings / float64(s.Deliveries)
}

// EarningsCalculator derives dashboard figures from the order ledger.
// It never mutates the orders it reads.
type EarningsCalculator struct{}

func NewEarningsCalculator() EarningsCalculator {
	return EarningsCalculator{}
}

// Summarize sums the commission of orders delivered on the calendar day of now.
// Days are compared in now's location.
//
// Example:
//
//	summary := calc.Summarize(orders, clock.Now())
//	summary.Earnings           // 5.8425 for a single 38.95 delivery
//	summary.AveragePerDelivery() // 0 if summary.Deliveries == 0
func (EarningsCalculator) Summarize(orders []*order.Order, now time.Time) DailySummary {
	summary := DailySummary{Date: startOfDay(now)}

	for _, o := range orders {
		if o == nil || o.Status() != order.Delivered {
			continue
		}
		if !sameDay(o.Timeline().DeliveredAt, now) {
			continue
		}

		summary.Earnings += o.Commission()
		summary.Deliveries++
	}

	return summary
}

func sameDay(at time.Time, now time.Time) bool {
	if at.IsZero() {
		return false
	}
	y1, m1, d1 := at.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func startOfDay(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}
