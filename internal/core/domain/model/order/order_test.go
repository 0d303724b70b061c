package order_test

import (
	"testing"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/order"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func validCustomer(t *testing.T) order.Customer {
	t.Helper()
	c, err := order.NewCustomer("Sarah Johnson", "+1 (555) 987-6543")
	require.NoError(t, err)
	return c
}

func validRoute(t *testing.T) order.Route {
	t.Helper()
	pickup, err := kernel.NewLocation(40.7614, -73.9776, "McDonald's, 5th Avenue")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(40.7505, -73.9934, "456 Park Avenue, Apt 12B")
	require.NoError(t, err)
	r, err := order.NewRoute(pickup, dropoff, 2.3, 15)
	require.NoError(t, err)
	return r
}

func validItems(t *testing.T) []order.Item {
	t.Helper()
	burger, err := order.NewItem("Burger Combo", 2, 12.99)
	require.NoError(t, err)
	fries, err := order.NewItem("Large Fries", 1, 4.99)
	require.NoError(t, err)
	return []order.Item{burger, fries}
}

func newAvailableOrder(t *testing.T, payment float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t), payment, "", baseTime)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create an available order without driver", func(t *testing.T) {
		id := kernel.NewUUID()

		o, err := order.NewOrder(id, validCustomer(t), validRoute(t), validItems(t), 38.95, "", baseTime)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.Available, o.Status())
		assert.Nil(t, o.Driver())
		assert.InDelta(t, 38.95, o.PaymentAmount(), 1e-9)
		assert.Equal(t, baseTime, o.Timeline().CreatedAt)
		assert.True(t, o.Timeline().AcceptedAt.IsZero())
		assert.Len(t, o.Items(), 2)
		assert.Equal(t, "Sarah Johnson", o.Customer().Name())
		assert.InDelta(t, 2.3, o.Route().DistanceKm(), 1e-9)
		assert.Empty(t, o.Notes())
	})

	t.Run("should keep trimmed delivery notes", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t), 38.95,
			"  Leave at door, ring bell ", baseTime)

		require.NoError(t, err)
		assert.Equal(t, "Leave at door, ring bell", o.Notes())
	})

	t.Run("should accept a free order", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t), 0, "", baseTime)

		require.NoError(t, err)
		assert.InDelta(t, 0, o.Commission(), 1e-9)
	})

	t.Run("should join every failed rule", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, order.Customer{}, order.Route{}, nil, -1, "", time.Time{})

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "customer must be created")
		assert.Contains(t, err.Error(), "route must be created")
		assert.Contains(t, err.Error(), "value is required: items")
		assert.Contains(t, err.Error(), "payment amount is invalid")
		assert.Contains(t, err.Error(), "createdAt")
	})

	t.Run("should reject a zero-value item", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), []order.Item{{}}, 10, "", baseTime)

		require.ErrorIs(t, err, order.ErrItemIsNotConstructed)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a copy", func(t *testing.T) {
		o := newAvailableOrder(t, 38.95)

		items := o.Items()
		items[0] = order.Item{}

		require.NoError(t, o.Items()[0].Validate())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should reject a zero-value order", func(t *testing.T) {
		var o order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("should reject a nil order", func(t *testing.T) {
		var o *order.Order

		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_Lifecycle(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("should walk the full chain and stamp each timestamp once", func(t *testing.T) {
		o := newAvailableOrder(t, 38.95)

		require.NoError(t, o.Accept(driverID, baseTime.Add(time.Minute)))
		require.NoError(t, o.PickUp(baseTime.Add(10*time.Minute)))
		require.NoError(t, o.StartTransit(baseTime.Add(11*time.Minute)))
		require.NoError(t, o.Deliver(baseTime.Add(25*time.Minute)))

		assert.Equal(t, order.Delivered, o.Status())
		assert.True(t, o.Driver().IsEqual(driverID))
		tl := o.Timeline()
		assert.Equal(t, baseTime.Add(time.Minute), tl.AcceptedAt)
		assert.Equal(t, baseTime.Add(10*time.Minute), tl.PickedUpAt)
		assert.Equal(t, baseTime.Add(25*time.Minute), tl.DeliveredAt)
		assert.True(t, tl.CancelledAt.IsZero())
	})

	t.Run("should reject any transition after delivery without touching timestamps", func(t *testing.T) {
		o := newAvailableOrder(t, 38.95)
		require.NoError(t, o.Accept(driverID, baseTime))
		require.NoError(t, o.PickUp(baseTime))
		require.NoError(t, o.StartTransit(baseTime))
		require.NoError(t, o.Deliver(baseTime.Add(time.Hour)))
		before := o.Timeline()

		require.ErrorIs(t, o.Accept(driverID, baseTime.Add(2*time.Hour)), errs.ErrIllegalTransition)
		require.ErrorIs(t, o.Deliver(baseTime.Add(2*time.Hour)), errs.ErrIllegalTransition)
		require.ErrorIs(t, o.Cancel(baseTime.Add(2*time.Hour)), errs.ErrIllegalTransition)

		assert.Equal(t, before, o.Timeline())
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("should reject skipping steps", func(t *testing.T) {
		o := newAvailableOrder(t, 10)

		require.ErrorIs(t, o.Deliver(baseTime), errs.ErrIllegalTransition)
		require.ErrorIs(t, o.PickUp(baseTime), errs.ErrIllegalTransition)
		require.ErrorIs(t, o.StartTransit(baseTime), errs.ErrIllegalTransition)
		assert.Equal(t, order.Available, o.Status())
	})

	t.Run("should reject a repeated transition", func(t *testing.T) {
		o := newAvailableOrder(t, 10)
		require.NoError(t, o.Accept(driverID, baseTime))

		err := o.Accept(kernel.NewUUID(), baseTime.Add(time.Minute))

		require.ErrorIs(t, err, errs.ErrIllegalTransition)
		assert.True(t, o.Driver().IsEqual(driverID))
		assert.Equal(t, baseTime, o.Timeline().AcceptedAt)
	})

	t.Run("should reject an invalid driver", func(t *testing.T) {
		o := newAvailableOrder(t, 10)

		err := o.Accept(kernel.UUID{}, baseTime)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, order.Available, o.Status())
	})

	t.Run("should clamp timestamps when the clock goes backwards", func(t *testing.T) {
		o := newAvailableOrder(t, 10)
		require.NoError(t, o.Accept(driverID, baseTime.Add(time.Hour)))

		require.NoError(t, o.PickUp(baseTime))

		assert.Equal(t, baseTime.Add(time.Hour), o.Timeline().PickedUpAt)
	})

	t.Run("should cancel only an available order", func(t *testing.T) {
		o := newAvailableOrder(t, 10)
		require.NoError(t, o.Cancel(baseTime.Add(time.Minute)))

		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, baseTime.Add(time.Minute), o.Timeline().CancelledAt)
		assert.Nil(t, o.Driver())
		require.ErrorIs(t, o.Accept(driverID, baseTime), errs.ErrIllegalTransition)

		accepted := newAvailableOrder(t, 10)
		require.NoError(t, accepted.Accept(driverID, baseTime))
		require.ErrorIs(t, accepted.Cancel(baseTime), errs.ErrIllegalTransition)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	driverID := kernel.NewUUID()

	t.Run("should follow the delivery scenario and credit 5.8425", func(t *testing.T) {
		o := newAvailableOrder(t, 38.95)

		for _, target := range []order.Status{order.Accepted, order.PickedUp, order.InTransit, order.Delivered} {
			require.NoError(t, o.ChangeStatus(target, driverID, baseTime))
		}

		assert.Equal(t, order.Delivered, o.Status())
		assert.InDelta(t, 5.8425, o.Commission(), 1e-9)
		require.ErrorIs(t, o.ChangeStatus(order.Accepted, driverID, baseTime), errs.ErrIllegalTransition)
	})

	t.Run("should reject Unknown and Available targets", func(t *testing.T) {
		o := newAvailableOrder(t, 10)

		require.ErrorIs(t, o.ChangeStatus(order.Unknown, driverID, baseTime), errs.ErrIllegalTransition)
		require.ErrorIs(t, o.ChangeStatus(order.Available, driverID, baseTime), errs.ErrIllegalTransition)
	})
}

func TestOrder_Advance(t *testing.T) {
	t.Run("should step through to delivered and stop", func(t *testing.T) {
		o := newAvailableOrder(t, 52.73)
		driverID := kernel.NewUUID()

		for range 4 {
			require.NoError(t, o.Advance(driverID, baseTime))
		}

		assert.Equal(t, order.Delivered, o.Status())
		require.ErrorIs(t, o.Advance(driverID, baseTime), errs.ErrIllegalTransition)
	})
}

func TestRestoreOrder(t *testing.T) {
	driverID := kernel.NewUUID()
	timeline := order.Timeline{CreatedAt: baseTime, AcceptedAt: baseTime.Add(time.Minute)}

	t.Run("should restore an accepted order", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t),
			31.47, "", order.Accepted, &driverID, timeline)

		require.NoError(t, err)
		assert.Equal(t, order.Accepted, o.Status())
		assert.Equal(t, timeline, o.Timeline())
		assert.True(t, o.Driver().IsEqual(driverID))
	})

	t.Run("should not alias the given driver pointer", func(t *testing.T) {
		id := kernel.NewUUID()
		o, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t),
			31.47, "", order.Accepted, &id, timeline)
		require.NoError(t, err)

		id = kernel.NewUUID()

		assert.False(t, o.Driver().IsEqual(id))
	})

	t.Run("should reject an active order without driver", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t),
			31.47, "", order.PickedUp, nil, timeline)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "picked_up is not a valid status to have no driver")
	})

	t.Run("should reject an available order with a driver", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t),
			31.47, "", order.Available, &driverID, timeline)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), validCustomer(t), validRoute(t), validItems(t),
			31.47, "", order.Unknown, nil, timeline)

		require.Error(t, err)
	})
}

func TestValueObjects(t *testing.T) {
	t.Run("item should validate quantity, price and name", func(t *testing.T) {
		_, err := order.NewItem(" ", 0, -1)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "item name")
		assert.Contains(t, err.Error(), "0 is less than 1")
		assert.Contains(t, err.Error(), "price is invalid")
	})

	t.Run("item should compute subtotal", func(t *testing.T) {
		item, err := order.NewItem("Pizza", 3, 10.5)

		require.NoError(t, err)
		assert.InDelta(t, 31.5, item.Subtotal(), 1e-9)
		assert.Empty(t, item.Notes())
	})

	t.Run("item should carry an optional note", func(t *testing.T) {
		item, err := order.NewItemWithNotes("Burger Combo", 2, 12.99, " no onions ")

		require.NoError(t, err)
		assert.Equal(t, "no onions", item.Notes())

		_, err = order.NewItemWithNotes("", 1, 1, "note")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("customer should require name and phone", func(t *testing.T) {
		_, err := order.NewCustomer("", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer name")
		assert.Contains(t, err.Error(), "customer phone")
	})

	t.Run("route should reject negative estimates", func(t *testing.T) {
		r := validRoute(t)

		_, err := order.NewRoute(r.Pickup(), r.Dropoff(), -1, -5)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "distance is invalid")
		assert.Contains(t, err.Error(), "estimated time is invalid")
	})
}
