package commands

import (
	"context"
)

// CancelJobCommandHandler cancels a non-terminal job. The translator
// assignment, if any, survives for auditing; cancelling an already terminal
// job yields job.ErrAlreadyTerminal.
type CancelJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCancelJobCommandHandler creates a handler for job cancellation.
func NewCancelJobCommandHandler(uowFactory JobUoWFactory) CancelJobCommandHandler {
	return CancelJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancel command.
func (h CancelJobCommandHandler) Handle(ctx context.Context, command CancelJobCommand) error {
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

	cancelledJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = validateJobAccess(cancelledJob, command.ActorID(), command.ActorRole()); err != nil {
		return err
	}

	if err = cancelledJob.Cancel(); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, cancelledJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
