package commands

import (
	"context"
)

// UpdateJobCommandHandler applies detail edits to a non-terminal job.
type UpdateJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewUpdateJobCommandHandler creates a handler for job detail edits.
func NewUpdateJobCommandHandler(uowFactory JobUoWFactory) UpdateJobCommandHandler {
	return UpdateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the update command. Edits on terminal jobs are rejected
// by the aggregate with job.ErrInvalidTransition.
func (h UpdateJobCommandHandler) Handle(ctx context.Context, command UpdateJobCommand) error {
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

	editedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = editedJob.UpdateDetails(
		command.StartAt(),
		command.DurationMin(),
		command.ContactEmail(),
		command.Reference(),
	); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, editedJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
