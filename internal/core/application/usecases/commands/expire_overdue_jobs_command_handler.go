package commands

import (
	"context"
)

// ExpireOverdueJobsCommandHandler cancels pending jobs nobody accepted before
// their scheduled start. All expirations in one sweep share a transaction.
type ExpireOverdueJobsCommandHandler struct {
	uowFactory JobUoWFactory
}

// NewExpireOverdueJobsCommandHandler creates a handler for the expiry sweep.
func NewExpireOverdueJobsCommandHandler(uowFactory JobUoWFactory) ExpireOverdueJobsCommandHandler {
	return ExpireOverdueJobsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the expiry sweep. Returns the number of jobs expired.
func (h ExpireOverdueJobsCommandHandler) Handle(ctx context.Context, command ExpireOverdueJobsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()

	overdue, err := jobRepo.GetPendingDueBefore(ctx, command.Deadline())
	if err != nil {
		return 0, err
	}

	for _, overdueJob := range overdue {
		if err = overdueJob.Cancel(); err != nil {
			return 0, err
		}
		if err = jobRepo.Update(ctx, overdueJob); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
