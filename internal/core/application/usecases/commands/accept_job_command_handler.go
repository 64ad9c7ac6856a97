package commands

import (
	"context"
	"errors"
	"time"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/services"
	"booking/internal/pkg/errs"
)

// AcceptJobCommandHandler assigns a pending job to an eligible translator.
//
// Concurrency: the repository update is guarded by the job's version, so two
// translators racing for the same job produce exactly one winner. The loser's
// write fails the version check and is reported as the same invalid-transition
// failure a late accept would get, keeping the API contract uniform.
type AcceptJobCommandHandler struct {
	uowFactory JobUserUoWFactory
	matcher    services.TranslatorMatcher
}

// NewAcceptJobCommandHandler creates a handler for job acceptance.
func NewAcceptJobCommandHandler(uowFactory JobUserUoWFactory) AcceptJobCommandHandler {
	return AcceptJobCommandHandler{
		uowFactory: uowFactory,
		matcher:    services.NewTranslatorMatcher(),
	}
}

// Handle processes the accept command. Eligibility (translator role, language
// match, not the job's own customer) yields errs.ErrUnauthorized; a job that
// is not pending, or a lost race, yields job.ErrInvalidTransition.
func (h AcceptJobCommandHandler) Handle(ctx context.Context, command AcceptJobCommand) error {
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

	claimedJob, err := jobRepo.Get(ctx, command.JobID())
	if err != nil {
		return err
	}

	translator, err := uow.UserRepository().Get(ctx, command.TranslatorID())
	if err != nil {
		return err
	}

	if err = h.matcher.ValidateEligibility(claimedJob, translator); err != nil {
		return err
	}

	if err = claimedJob.Accept(translator.ID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = jobRepo.Update(ctx, claimedJob); err != nil {
		if errors.Is(err, errs.ErrVersionIsInvalid) {
			return job.NewInvalidTransitionError("accept", job.Accepted)
		}
		return err
	}

	return uow.Commit(ctx)
}
