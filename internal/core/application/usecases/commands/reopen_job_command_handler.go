package commands

import (
	"context"
)

// ReopenJobCommandHandler returns a terminal job to pending. Reopening a job
// that is already pending commits without touching the row, making retries of
// the same request safe.
type ReopenJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewReopenJobCommandHandler creates a handler for job reopening.
func NewReopenJobCommandHandler(uowFactory JobUoWFactory) ReopenJobCommandHandler {
	return ReopenJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reopen command.
func (h ReopenJobCommandHandler) Handle(ctx context.Context, command ReopenJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	reopenedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	wasTerminal := reopenedJob.Status().IsTerminal()

	if err = reopenedJob.Reopen(); err != nil {
		return err
	}

	if wasTerminal {
		if err = jobRepo.Update(ctx, reopenedJob); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
