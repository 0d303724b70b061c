package services_test

import (
	"testing"
	"time"

	"porter/internal/core/domain/model/order"
	"porter/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deliveredAt(t *testing.T, payment float64, at time.Time) *order.Order {
	t.Helper()
	o := newOrderAt(t, payment, at.Add(-time.Hour))
	d := newDriver(t)
	for range 4 {
		_, err := services.NewOrderLifecycle().Advance(o, d, nil, at)
		require.NoError(t, err)
	}
	return o
}

func TestEarningsCalculator_Summarize(t *testing.T) {
	calc := services.NewEarningsCalculator()

	t.Run("should return zero average when nothing was delivered today", func(t *testing.T) {
		summary := calc.Summarize([]*order.Order{newOrder(t, 38.95)}, now)

		assert.Zero(t, summary.Deliveries)
		assert.Zero(t, summary.Earnings)
		assert.Zero(t, summary.AveragePerDelivery())
	})

	t.Run("should count only orders delivered on the current day", func(t *testing.T) {
		orders := []*order.Order{
			deliveredAt(t, 38.95, now),
			deliveredAt(t, 46.67, now.Add(-2*time.Hour)),
			deliveredAt(t, 100, now.AddDate(0, 0, -1)),
			newOrder(t, 31.47),
		}

		summary := calc.Summarize(orders, now)

		assert.Equal(t, 2, summary.Deliveries)
		assert.InDelta(t, (38.95+46.67)*0.15, summary.Earnings, 1e-9)
		assert.InDelta(t, summary.Earnings/2, summary.AveragePerDelivery(), 1e-12)
		assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), summary.Date)
	})

	t.Run("should leave out an order delivered late the day before", func(t *testing.T) {
		yesterday := deliveredAt(t, 100, time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC))
		require.Equal(t, 1, yesterday.Timeline().DeliveredAt.Day())

		summary := calc.Summarize([]*order.Order{yesterday, deliveredAt(t, 38.95, now)}, now)

		assert.Equal(t, 1, summary.Deliveries)
		assert.InDelta(t, 38.95*0.15, summary.Earnings, 1e-9)
	})

	t.Run("should compare calendar days in the clock's location", func(t *testing.T) {
		newYork := time.FixedZone("EST", -5*60*60)
		// 02:00 UTC on March 3rd is still March 2nd in New York.
		lateEvening := time.Date(2026, 3, 3, 2, 0, 0, 0, time.UTC)

		summary := calc.Summarize([]*order.Order{deliveredAt(t, 38.95, lateEvening)}, now.In(newYork))

		assert.Equal(t, 1, summary.Deliveries)
	})

	t.Run("should not mutate the orders", func(t *testing.T) {
		o := deliveredAt(t, 38.95, now)
		before := o.Timeline()

		calc.Summarize([]*order.Order{o, nil}, now)

		assert.Equal(t, before, o.Timeline())
		assert.Equal(t, order.Delivered, o.Status())
	})
}
