package commands_test

import (
	"testing"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/distance"
	"booking/internal/core/domain/model/kernel"
	"booking/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestCorrectDistanceCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	record, err := distance.NewDistance(jobID)
	require.NoError(t, err)

	correction, err := distance.NewCorrection(strPtr("12 km"), strPtr("20 min"), nil, nil, nil, nil, nil)
	require.NoError(t, err)
	cmd, err := commands.NewCorrectDistanceCommand(jobID, correction)
	require.NoError(t, err)

	distanceRepo := new(MockDistanceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DistanceRepository").Return(distanceRepo).Once(),
		distanceRepo.On("GetByJobID", mock.Anything, jobID).Return(record, nil).Once(),
		distanceRepo.On("Update", mock.Anything, record).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDistanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCorrectDistanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, "12 km", record.DistanceValue())
	require.Equal(t, "20 min", record.Time())
	distanceRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCorrectDistanceCommandHandler_Handle_EmptyCorrection(t *testing.T) {
	ctx := t.Context()
	correction, err := distance.NewCorrection(nil, nil, nil, nil, nil, nil, nil)
	require.NoError(t, err)
	cmd, err := commands.NewCorrectDistanceCommand(kernel.NewUUID(), correction)
	require.NoError(t, err)

	factory := new(MockDistanceUoWFactory)

	h := commands.NewCorrectDistanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, distance.ErrNothingToCorrect)
	factory.AssertNotCalled(t, "Create")
}

func TestCorrectDistanceCommandHandler_Handle_RecordNotFound(t *testing.T) {
	ctx := t.Context()
	jobID := kernel.NewUUID()
	correction, err := distance.NewCorrection(nil, nil, nil, strPtr("note"), boolPtr(true), nil, nil)
	require.NoError(t, err)
	cmd, err := commands.NewCorrectDistanceCommand(jobID, correction)
	require.NoError(t, err)

	distanceRepo := new(MockDistanceRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DistanceRepository").Return(distanceRepo).Once(),
		distanceRepo.On("GetByJobID", mock.Anything, jobID).
			Return(nil, errs.NewObjectNotFoundError("jobID", jobID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDistanceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCorrectDistanceCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
