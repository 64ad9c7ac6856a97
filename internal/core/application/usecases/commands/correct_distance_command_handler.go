package commands

import (
	"context"

	"booking/internal/core/domain/model/distance"
)

// CorrectDistanceCommandHandler applies a distance-feed correction to the
// job's metadata record. An empty correction is reported as
// distance.ErrNothingToCorrect without touching the database.
type CorrectDistanceCommandHandler struct {
	uowFactory DistanceUoWFactory
}

// NewCorrectDistanceCommandHandler creates a handler for distance corrections.
func NewCorrectDistanceCommandHandler(uowFactory DistanceUoWFactory) CorrectDistanceCommandHandler {
	return CorrectDistanceCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command.
func (h CorrectDistanceCommandHandler) Handle(ctx context.Context, command CorrectDistanceCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	if command.Correction().IsEmpty() {
		return distance.ErrNothingToCorrect
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	distanceRepo := uow.DistanceRepository()

	record, err := distanceRepo.GetByJobID(ctx, command.JobID())
	if err != nil {
		return err
	}

	if err = record.ApplyCorrection(command.Correction()); err != nil {
		return err
	}

	if err = distanceRepo.Update(ctx, record); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
