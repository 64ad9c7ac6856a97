package commands

import (
	"context"
	"time"
)

// EndJobCommandHandler completes an in-progress session and records the end
// timestamp.
type EndJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewEndJobCommandHandler creates a handler for session completion.
func NewEndJobCommandHandler(uowFactory JobUoWFactory) EndJobCommandHandler {
	return EndJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the end command.
func (h EndJobCommandHandler) Handle(ctx context.Context, command EndJobCommand) error {
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

	endedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = validateJobAccess(endedJob, command.ActorID(), command.ActorRole()); err != nil {
		return err
	}

	if err = endedJob.Complete(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, endedJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
