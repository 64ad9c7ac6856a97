package commands

import (
	"context"
	"time"

	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/job"
)

// CreateJobCommandHandler persists a new job together with its empty
// distance record in one transaction, so the distance-feed endpoint always
// has a row to correct.
type CreateJobCommandHandler struct {
	uowFactory JobDistanceUoWFactory
}

// NewCreateJobCommandHandler creates a handler for job creation.
func NewCreateJobCommandHandler(uowFactory JobDistanceUoWFactory) CreateJobCommandHandler {
	return CreateJobCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the job creation command. The job starts in pending
// status; notification fan-out to eligible translators is a separate command
// so a gateway hiccup never rolls back the booking.
func (h CreateJobCommandHandler) Handle(ctx context.Context, command CreateJobCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	newJob, err := job.NewJob(
		command.JobID(),
		command.CustomerID(),
		command.Language(),
		command.StartAt(),
		command.DurationMin(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if command.ContactEmail() != "" || command.Reference() != "" {
		if err = newJob.UpdateDetails(time.Time{}, 0, command.ContactEmail(), command.Reference()); err != nil {
			return err
		}
	}

	newDistance, err := distance.NewDistance(newJob.ID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.JobRepository().Add(ctx, newJob); err != nil {
		return err
	}

	if err = uow.DistanceRepository().Add(ctx, newDistance); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
