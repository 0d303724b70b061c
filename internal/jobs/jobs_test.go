package jobs_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/domain/services"
	"porter/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockDailySummaryPublisher struct{ mock.Mock }

func (m *MockDailySummaryPublisher) Handle(
	ctx context.Context,
	cmd commands.PublishDailySummaryCommand,
) (services.DailySummary, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(services.DailySummary), args.Error(1)
}

type MockSessionExpirer struct{ mock.Mock }

func (m *MockSessionExpirer) Handle(ctx context.Context, cmd commands.ExpireSessionCommand) (bool, error) {
	args := m.Called(ctx, cmd)
	return args.Bool(0), args.Error(1)
}

// yearly keeps the scheduler from firing during a test.
const yearly = "0 0 0 1 1 *"

func newLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestDailySummaryJob_Run(t *testing.T) {
	t.Run("should log the published summary", func(t *testing.T) {
		var logs bytes.Buffer
		handler := &MockDailySummaryPublisher{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(services.DailySummary{
			Date:       time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC),
			Earnings:   5.8425,
			Deliveries: 1,
		}, nil).Once()

		jobs.NewDailySummaryJob(handler, yearly, newLogger(&logs)).Run(t.Context())

		handler.AssertExpectations(t)
		assert.Contains(t, logs.String(), "Daily summary published")
		assert.Contains(t, logs.String(), "date=2026-03-02")
		assert.Contains(t, logs.String(), "component=daily_summary_job")
	})

	t.Run("should log a failure", func(t *testing.T) {
		var logs bytes.Buffer
		handler := &MockDailySummaryPublisher{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(services.DailySummary{}, errors.New("boom")).Once()

		jobs.NewDailySummaryJob(handler, yearly, newLogger(&logs)).Run(t.Context())

		assert.Contains(t, logs.String(), "Daily summary job failed")
		assert.Contains(t, logs.String(), "boom")
	})
}

func TestSessionExpiryJob_Run(t *testing.T) {
	t.Run("should log only when a session was ended", func(t *testing.T) {
		var logs bytes.Buffer
		handler := &MockSessionExpirer{}
		handler.On("Handle", mock.Anything, mock.Anything).Return(false, nil).Once()
		handler.On("Handle", mock.Anything, mock.Anything).Return(true, nil).Once()
		job := jobs.NewSessionExpiryJob(handler, yearly, newLogger(&logs))

		job.Run(t.Context())
		assert.NotContains(t, logs.String(), "Expired session ended")

		job.Run(t.Context())
		assert.Contains(t, logs.String(), "Expired session ended")
		handler.AssertExpectations(t)
	})
}

func TestJobManager(t *testing.T) {
	t.Run("should start and stop every job", func(t *testing.T) {
		var logs bytes.Buffer
		manager := jobs.NewJobManager(&MockDailySummaryPublisher{}, &MockSessionExpirer{},
			jobs.Schedules{DailySummary: yearly, SessionExpiry: yearly}, newLogger(&logs))

		require.NoError(t, manager.StartAll())
		manager.StopAll()

		for _, msg := range []string{
			"Daily summary job started", "Session expiry job started",
			"Daily summary job stopped", "Session expiry job stopped",
		} {
			assert.Contains(t, logs.String(), msg)
		}
	})

	t.Run("should reject an invalid schedule and stop started jobs", func(t *testing.T) {
		var logs bytes.Buffer
		manager := jobs.NewJobManager(&MockDailySummaryPublisher{}, &MockSessionExpirer{},
			jobs.Schedules{DailySummary: "every evening", SessionExpiry: yearly}, newLogger(&logs))

		err := manager.StartAll()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "daily summary job")
		assert.Contains(t, logs.String(), "Session expiry job stopped")
	})
}
