package jobs

import (
	"context"
	"log/slog"

	"porter/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// SessionExpirer ends the session once its token stops verifying.
type SessionExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireSessionCommand) (bool, error)
}

// SessionExpiryJob sweeps the stale session on a cron schedule so that an
// idle console does not keep an expired login.
type SessionExpiryJob struct {
	handler  SessionExpirer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewSessionExpiryJob(handler SessionExpirer, schedule string, logger *slog.Logger) *SessionExpiryJob {
	return &SessionExpiryJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "session_expiry_job"),
	}
}

func (j *SessionExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Session expiry job started", "schedule", j.schedule)
	return nil
}

// Run performs one sweep.
func (j *SessionExpiryJob) Run(ctx context.Context) {
	expired, err := j.handler.Handle(ctx, commands.NewExpireSessionCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Session expiry job failed", "error", err)
		return
	}

	if expired {
		j.logger.InfoContext(ctx, "Expired session ended")
	}
}

func (j *SessionExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Session expiry job stopped")
}
