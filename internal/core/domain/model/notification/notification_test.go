package notification_test

import (
	"testing"
	"time"

	"porter/internal/core/domain/model/kernel"
	"porter/internal/core/domain/model/notification"
	"porter/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pushedAt = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestNewNotification(t *testing.T) {
	t.Run("should create an unread notification", func(t *testing.T) {
		n, err := notification.NewNotification(kernel.NewUUID(), "New Order", "Order #1 is available", notification.Info, pushedAt)

		require.NoError(t, err)
		require.NoError(t, n.Validate())
		assert.False(t, n.IsRead())
		assert.Equal(t, notification.Info, n.Kind())
		assert.Equal(t, pushedAt, n.Timestamp())
	})

	t.Run("should keep the message verbatim", func(t *testing.T) {
		message := `Your report: "  wrong  address " has been submitted.`

		n, err := notification.NewNotification(kernel.NewUUID(), "Issue Reported", message, notification.Info, pushedAt)

		require.NoError(t, err)
		assert.Equal(t, message, n.Message())
	})

	t.Run("should reject missing fields", func(t *testing.T) {
		_, err := notification.NewNotification(kernel.NewUUID(), " ", "", notification.Unknown, time.Time{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestNotification_MarkRead(t *testing.T) {
	n, err := notification.NewNotification(kernel.NewUUID(), "SOS Alert Sent", "help", notification.Warning, pushedAt)
	require.NoError(t, err)

	n.MarkRead()
	n.MarkRead()

	assert.True(t, n.IsRead())
}

func TestParseKind(t *testing.T) {
	for _, kind := range []notification.Kind{notification.Info, notification.Success, notification.Warning, notification.Error} {
		parsed, err := notification.ParseKind(kind.String())

		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}

	_, err := notification.ParseKind("critical")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
