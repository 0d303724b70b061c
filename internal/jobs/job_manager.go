package jobs

import (
	"fmt"
	"log/slog"
)

// Schedules holds the cron expressions (with a seconds field) of every job.
type Schedules struct {
	DailySummary  string
	SessionExpiry string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dailySummaryJob  *DailySummaryJob
	sessionExpiryJob *SessionExpiryJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	summaryHandler DailySummaryPublisher,
	expiryHandler SessionExpirer,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dailySummaryJob:  NewDailySummaryJob(summaryHandler, schedules.DailySummary, logger),
		sessionExpiryJob: NewSessionExpiryJob(expiryHandler, schedules.SessionExpiry, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.sessionExpiryJob.Start(); err != nil {
		return fmt.Errorf("failed to start session expiry job: %w", err)
	}

	if err := jm.dailySummaryJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.sessionExpiryJob.Stop()
		return fmt.Errorf("failed to start daily summary job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs and waits for running ones to finish.
func (jm *JobManager) StopAll() {
	jm.dailySummaryJob.Stop()
	jm.sessionExpiryJob.Stop()
}
