package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReopenJobCommandHandler_Handle_TerminalJob(t *testing.T) {
	ctx := t.Context()
	terminalJob := newPendingJob(t, "sv")
	translator := newTranslator(t, "sv")
	require.NoError(t, terminalJob.Accept(translator.ID(), time.Now()))
	require.NoError(t, terminalJob.Cancel())

	cmd, err := commands.NewReopenJobCommand(terminalJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, terminalJob.ID()).Return(terminalJob, nil).Once(),
		jobRepo.On("Update", mock.Anything, terminalJob).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReopenJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, job.Pending, terminalJob.Status())
	require.Nil(t, terminalJob.Translator())
	jobRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestReopenJobCommandHandler_Handle_AlreadyPendingSkipsWrite(t *testing.T) {
	ctx := t.Context()
	pendingJob := newPendingJob(t, "sv")

	cmd, err := commands.NewReopenJobCommand(pendingJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, pendingJob.ID()).Return(pendingJob, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReopenJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Equal(t, job.Pending, pendingJob.Status())
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestReopenJobCommandHandler_Handle_ActiveJobRejected(t *testing.T) {
	ctx := t.Context()
	activeJob := newPendingJob(t, "sv")
	translator := newTranslator(t, "sv")
	require.NoError(t, activeJob.Accept(translator.ID(), time.Now()))

	cmd, err := commands.NewReopenJobCommand(activeJob.ID())
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("Get", mock.Anything, activeJob.ID()).Return(activeJob, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReopenJobCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, job.ErrInvalidTransition)
	require.Equal(t, job.Accepted, activeJob.Status())
}
