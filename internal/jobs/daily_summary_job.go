package jobs

import (
	"context"
	"log/slog"

	"porter/internal/core/application/usecases/commands"
	"porter/internal/core/domain/services"

	"github.com/robfig/cron/v3"
)

// DailySummaryPublisher pushes the end-of-day notification.
type DailySummaryPublisher interface {
	Handle(ctx context.Context, cmd commands.PublishDailySummaryCommand) (services.DailySummary, error)
}

// DailySummaryJob posts today's deliveries and earnings to the notification
// queue on a cron schedule.
type DailySummaryJob struct {
	handler  DailySummaryPublisher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewDailySummaryJob(handler DailySummaryPublisher, schedule string, logger *slog.Logger) *DailySummaryJob {
	return &DailySummaryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "daily_summary_job"),
	}
}

// Start registers the job with its schedule and starts the scheduler.
func (j *DailySummaryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Daily summary job started", "schedule", j.schedule)
	return nil
}

// Run publishes one summary. Failures are logged.
func (j *DailySummaryJob) Run(ctx context.Context) {
	summary, err := j.handler.Handle(ctx, commands.NewPublishDailySummaryCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Daily summary job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Daily summary published",
		"date", summary.Date.Format("2006-01-02"),
		"deliveries", summary.Deliveries,
		"earnings", summary.Earnings,
	)
}

func (j *DailySummaryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Daily summary job stopped")
}
