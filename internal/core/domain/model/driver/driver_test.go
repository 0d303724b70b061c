package driver_test

import (
	"testing"

	"porter/internal/core/domain/model/driver"
	"porter/internal/core/domain/model/kernel"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVehicle(t *testing.T) kernel.Vehicle {
	t.Helper()
	v, err := kernel.NewVehicle("Car", "ABC-123")
	require.NoError(t, err)
	return v
}

func newDriver(t *testing.T) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), "John Smith", "john.smith@porter.com", "+1 (555) 123-4567", validVehicle(t))
	require.NoError(t, err)
	return d
}

func TestNewDriver(t *testing.T) {
	t.Run("should create an offline driver with empty totals", func(t *testing.T) {
		id := kernel.NewUUID()

		d, err := driver.NewDriver(id, "John Smith", "john.smith@porter.com", "+1 (555) 123-4567", validVehicle(t))

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.Equal(t, driver.Offline, d.Status())
		assert.Equal(t, driver.Performance{}, d.Performance())
		assert.Equal(t, "ABC-123", d.Vehicle().Number())
		_, has := d.Location()
		assert.False(t, has)
	})

	t.Run("should join every failed rule", func(t *testing.T) {
		d, err := driver.NewDriver(kernel.UUID{}, "", " ", "", kernel.Vehicle{})

		require.Error(t, err)
		assert.Nil(t, d)
		require.ErrorIs(t, err, driver.ErrNameIsRequired)
		require.ErrorIs(t, err, driver.ErrEmailIsRequired)
		require.ErrorIs(t, err, driver.ErrPhoneIsRequired)
		require.ErrorIs(t, err, kernel.ErrVehicleIsNotConstructed)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		var d driver.Driver

		require.ErrorIs(t, d.Validate(), driver.ErrDriverIsNotConstructed)
	})
}

func TestRestoreDriver(t *testing.T) {
	loc, err := kernel.NewLocation(40.7589, -73.9851, "Times Square, New York, NY")
	require.NoError(t, err)

	t.Run("should restore the seeded driver", func(t *testing.T) {
		perf := driver.Performance{Rating: 4.8, TotalDeliveries: 1247, TotalEarnings: 15420.5}

		d, err := driver.RestoreDriver(kernel.NewUUID(), "John Smith", "john.smith@porter.com", "+1",
			validVehicle(t), perf, driver.Online, &loc)

		require.NoError(t, err)
		assert.Equal(t, perf, d.Performance())
		assert.Equal(t, driver.Online, d.Status())
		got, has := d.Location()
		require.True(t, has)
		assert.Equal(t, loc, got)
	})

	t.Run("should reject invalid performance and status", func(t *testing.T) {
		perf := driver.Performance{Rating: 5.5, TotalDeliveries: -1, TotalEarnings: -3}

		_, err := driver.RestoreDriver(kernel.NewUUID(), "John", "j@p.com", "+1",
			validVehicle(t), perf, driver.Unknown, nil)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "total deliveries is invalid")
		assert.Contains(t, err.Error(), "total earnings is invalid")
		assert.Contains(t, err.Error(), "driver status is invalid")
	})
}

func TestDriver_Status(t *testing.T) {
	t.Run("should toggle between online and offline", func(t *testing.T) {
		d := newDriver(t)

		assert.Equal(t, driver.Online, d.Toggle())
		assert.Equal(t, driver.Offline, d.Toggle())
	})

	t.Run("should toggle busy to online", func(t *testing.T) {
		d := newDriver(t)
		require.NoError(t, d.SetStatus(driver.Busy))

		assert.Equal(t, driver.Online, d.Toggle())
	})

	t.Run("should reject an unknown status", func(t *testing.T) {
		d := newDriver(t)

		require.ErrorIs(t, d.SetStatus(driver.Unknown), errs.ErrValueIsInvalid)
		assert.Equal(t, driver.Offline, d.Status())
	})

	t.Run("should parse textual statuses", func(t *testing.T) {
		s, err := driver.ParseStatus(" BUSY ")
		require.NoError(t, err)
		assert.Equal(t, driver.Busy, s)

		_, err = driver.ParseStatus("sleeping")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestDriver_CreditDelivery(t *testing.T) {
	t.Run("should add one delivery and the commission", func(t *testing.T) {
		d := newDriver(t)

		require.NoError(t, d.CreditDelivery(5.8425))
		require.NoError(t, d.CreditDelivery(4.7205))

		assert.Equal(t, 2, d.Performance().TotalDeliveries)
		assert.InDelta(t, 10.563, d.Performance().TotalEarnings, 1e-9)
	})

	t.Run("should reject a negative commission without changing totals", func(t *testing.T) {
		d := newDriver(t)

		require.ErrorIs(t, d.CreditDelivery(-1), errs.ErrValueIsInvalid)
		assert.Equal(t, driver.Performance{}, d.Performance())
	})
}

func TestDriver_Relocate(t *testing.T) {
	first, _ := kernel.NewLocation(40.7580, -73.9855, "Times Square")
	second, _ := kernel.NewLocation(40.7484, -73.9857, "Empire State Building")

	t.Run("should return the previous position", func(t *testing.T) {
		d := newDriver(t)

		_, had, err := d.Relocate(first)
		require.NoError(t, err)
		assert.False(t, had)

		previous, had, err := d.Relocate(second)
		require.NoError(t, err)
		assert.True(t, had)
		assert.Equal(t, first, previous)

		current, _ := d.Location()
		assert.Equal(t, second, current)
	})

	t.Run("should reject a zero-value location", func(t *testing.T) {
		d := newDriver(t)

		_, _, err := d.Relocate(kernel.Location{})

		require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
	})
}

func TestDriver_UpdateContact(t *testing.T) {
	t.Run("should replace contact details but keep email", func(t *testing.T) {
		d := newDriver(t)
		bike, _ := kernel.NewVehicle("Bike", "xyz-9")

		require.NoError(t, d.UpdateContact("Johnny Smith", "+1 (555) 000-0000", bike))

		assert.Equal(t, "Johnny Smith", d.Name())
		assert.Equal(t, "+1 (555) 000-0000", d.Phone())
		assert.Equal(t, "XYZ-9", d.Vehicle().Number())
		assert.Equal(t, "john.smith@porter.com", d.Email())
	})

	t.Run("should be all-or-nothing", func(t *testing.T) {
		d := newDriver(t)
		bike, _ := kernel.NewVehicle("Bike", "xyz-9")

		err := d.UpdateContact("Johnny Smith", "", bike)

		require.ErrorIs(t, err, driver.ErrPhoneIsRequired)
		assert.Equal(t, "John Smith", d.Name())
		assert.Equal(t, "ABC-123", d.Vehicle().Number())
	})
}
