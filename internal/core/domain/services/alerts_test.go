package services_test

import (
	"testing"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/core/domain/services"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlerts(t *testing.T) {
	alerts := services.NewAlerts()

	t.Run("should raise an SOS warning", func(t *testing.T) {
		n, err := alerts.SOS(kernel.NewUUID(), now)

		require.NoError(t, err)
		assert.Equal(t, notification.Warning, n.Kind())
		assert.Equal(t, "SOS Alert Sent", n.Title())
		assert.Equal(t, "Emergency services and Porter support have been notified of your location.", n.Message())
	})

	t.Run("should embed the issue verbatim", func(t *testing.T) {
		n, err := alerts.Issue(kernel.NewUUID(), `Customer said "ring twice"`, now)

		require.NoError(t, err)
		assert.Equal(t, notification.Info, n.Kind())
		assert.Equal(t, `Your report: "Customer said "ring twice"" has been submitted to Porter support.`, n.Message())
	})

	t.Run("should require an issue description", func(t *testing.T) {
		_, err := alerts.Issue(kernel.NewUUID(), "  ", now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should report the delivery commission", func(t *testing.T) {
		o := deliveredAt(t, 38.95, now)

		n, err := alerts.Delivered(kernel.NewUUID(), o, now)

		require.NoError(t, err)
		assert.Equal(t, notification.Success, n.Kind())
		assert.Contains(t, n.Message(), "$5.84")
	})

	t.Run("should summarise the day", func(t *testing.T) {
		summary := services.NewEarningsCalculator().Summarize(nil, now)

		n, err := alerts.Summary(kernel.NewUUID(), summary, now)

		require.NoError(t, err)
		assert.Equal(t, "2026-03-02: 0 deliveries, $0.00 earned, $0.00 per delivery.", n.Message())
	})
}
