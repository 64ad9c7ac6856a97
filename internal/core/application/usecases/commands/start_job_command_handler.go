package commands

import (
	"context"
	"time"

	"booking/internal/pkg/errs"
)

// StartJobCommandHandler moves an accepted job into the in-progress state.
// Only the assigned translator may start the session.
type StartJobCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewStartJobCommandHandler creates a handler for session starts.
func NewStartJobCommandHandler(uowFactory JobUoWFactory) StartJobCommandHandler {
	return StartJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start command.
func (h StartJobCommandHandler) Handle(ctx context.Context, command StartJobCommand) error {
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

	startedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	if startedJob.Translator() == nil || !startedJob.Translator().IsEqual(command.ActorID()) {
		return errs.NewUnauthorizedError("only the assigned translator can start the session")
	}

	if err = startedJob.Start(time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, startedJob); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
