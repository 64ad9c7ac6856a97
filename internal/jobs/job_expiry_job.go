package jobs

import (
	"context"
	"time"

	"booking/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// JobExpiryJob cancels pending jobs whose scheduled start has passed without
// a translator accepting them. Runs every minute.
type JobExpiryJob struct {
	handler commands.ExpireOverdueJobsCommandHandler
	cron    *cron.Cron
	logger  *zap.Logger
}

// NewJobExpiryJob creates the expiry sweep job.
func NewJobExpiryJob(handler commands.ExpireOverdueJobsCommandHandler, logger *zap.Logger) *JobExpiryJob {
	return &JobExpiryJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With(zap.String("component", "job_expiry_job")),
	}
}

// Start begins the expiry sweep, running at the top of every minute.
func (j *JobExpiryJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * * *", func() {
		ctx := context.Background()

		cmd, err := commands.NewExpireOverdueJobsCommand(time.Now().UTC())
		if err != nil {
			j.logger.Error("failed to build expiry command", zap.Error(err))
			return
		}

		expired, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.Error("expiry sweep failed", zap.Error(err))
			return
		}

		if expired > 0 {
			j.logger.Info("expired overdue jobs", zap.Int("count", expired))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("job expiry sweep started (running every minute)")
	return nil
}

// Stop stops the expiry sweep.
func (j *JobExpiryJob) Stop() {
	j.cron.Stop()
	j.logger.Info("job expiry sweep stopped")
}
