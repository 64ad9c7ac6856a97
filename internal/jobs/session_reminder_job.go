package jobs

import (
	"context"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// SessionReminderJob pushes a reminder to translators whose accepted
// sessions start within the reminder window. Runs every minute; jobs
// already reminded are skipped by the sweep.
type SessionReminderJob struct {
	handler commands.SendSessionRemindersCommandHandler
	window  time.Duration
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewSessionReminderJob creates the reminder sweep job.
func NewSessionReminderJob(
	handler commands.SendSessionRemindersCommandHandler,
	window time.Duration,
	logger *zap.Logger,
) *SessionReminderJob {
	return &SessionReminderJob{
		handler: handler,
		window:  window,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "session_reminder_job")),
	}
}

// Start begins the reminder sweep, running at the top of every minute.
func (j *SessionReminderJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewSendSessionRemindersCommand(time.Now().UTC(), j.window)
		if err != nil {
			j.logger.Error("failed to build reminder command", zap.Error(err))
			return
		}

		results, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("reminder sweep failed", zap.Error(err))
			return
		}

		for _, result := range results {
			if !result.Sent {
				j.logger.Warn("session reminder not delivered",
					zap.String("user_id", result.UserID.String()),
					zap.String("reason", result.Reason))
			}
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("session reminder sweep started (running every minute)",
		zap.Duration("window", j.window))
	return nil
}

// Stop stops the reminder sweep.
func (j *SessionReminderJob) Stop() {
	j.cron.Stop()
	j.logger.Info("session reminder sweep stopped")
}
