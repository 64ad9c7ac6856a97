package commands

import (
	"context"
	"time"
)

// CustomerNotCallCommandHandler moves an accepted or in-progress job to the
// not_called terminal status.
type CustomerNotCallCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewCustomerNotCallCommandHandler creates a handler for no-show marking.
func NewCustomerNotCallCommandHandler(uowFactory JobUoWFactory) CustomerNotCallCommandHandler {
	return CustomerNotCallCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the not-call command.
func (h CustomerNotCallCommandHandler) Handle(ctx context.Context, command CustomerNotCallCommand) error {
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

	markedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = validateJobAccess(markedJob, command.ActorID(), command.ActorRole()); err != nil {
		return err
	}

	if err = markedJob.MarkNotCalled(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, markedJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
