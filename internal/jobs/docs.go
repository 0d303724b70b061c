// Package jobs provides scheduled background tasks for the driver core.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
// Schedules use the six-field format with a leading seconds field.
//
// # Available Jobs
//
// 1. DailySummaryJob - Pushes a "Daily Summary" notification with today's deliveries and earnings
// 2. SessionExpiryJob - Ends the active session once its token has expired
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(summaryHandler, expiryHandler, jobs.Schedules{
//		DailySummary:  "0 0 21 * * *",
//		SessionExpiry: "0 */5 * * * *",
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failed run is logged and the job keeps its schedule
// - Failed job starts will stop any already running jobs
package jobs
