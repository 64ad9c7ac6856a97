package commands_test

import (
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExpireOverdueJobsCommandHandler_Handle_CancelsAllOverdue(t *testing.T) {
	ctx := t.Context()
	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	first := newPendingJob(t, "sv")
	second := newPendingJob(t, "fi")
	cmd, err := commands.NewExpireOverdueJobsCommand(deadline)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetPendingDueBefore", mock.Anything, deadline).
			Return([]*job.Job{first, second}, nil).Once(),
		jobRepo.On("Update", mock.Anything, first).Return(nil).Once(),
		jobRepo.On("Update", mock.Anything, second).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOverdueJobsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, expired)
	assert.Equal(t, job.Cancelled, first.Status())
	assert.Equal(t, job.Cancelled, second.Status())
	mock.AssertExpectationsForObjects(t, factory, uow, jobRepo)
}

func TestExpireOverdueJobsCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	deadline := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	cmd, err := commands.NewExpireOverdueJobsCommand(deadline)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		jobRepo.On("GetPendingDueBefore", mock.Anything, deadline).
			Return([]*job.Job{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockJobUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewExpireOverdueJobsCommandHandler(factory)
	expired, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, expired)
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestExpireOverdueJobsCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewExpireOverdueJobsCommandHandler(new(MockJobUoWFactory))

	_, err := handler.Handle(t.Context(), commands.ExpireOverdueJobsCommand{})

	require.ErrorIs(t, err, commands.ErrExpireOverdueJobsCommandIsNotConstructed)
}
