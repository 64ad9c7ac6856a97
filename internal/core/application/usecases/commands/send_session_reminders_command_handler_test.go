package commands_test

import (
	"errors"
	"testing"
	"time"

	"booking/internal/core/application/usecases/commands"
	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAcceptedDueJob(t *testing.T, translatorID kernel.UUID) *job.Job {
	t.Helper()
	j := newPendingJob(t, "sv")
	require.NoError(t, j.Accept(translatorID, time.Now().UTC()))
	return j
}

func TestSendSessionRemindersCommandHandler_Handle_MarksRemindedOnSuccess(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	window := time.Hour
	translator := newTranslatorWithToken(t, "sv", "device-1")
	dueJob := newAcceptedDueJob(t, translator.ID())
	cmd, err := commands.NewSendSessionRemindersCommand(now, window)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	pushSender := new(MockPushSender)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("JobRepository").Return(jobRepo).Once(),
		uow.On("UserRepository").Return(userRepo).Once(),
		jobRepo.On("GetAcceptedStartingWithin", mock.Anything, now, window).
			Return([]*job.Job{dueJob}, nil).Once(),
		userRepo.On("Get", mock.Anything, translator.ID()).Return(translator, nil).Once(),
		pushSender.On("SendPush", mock.Anything, mock.Anything).Return(nil).Once(),
		jobRepo.On("Update", mock.Anything, dueJob).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockJobUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendSessionRemindersCommandHandler(factory, pushSender, testTimeouts())
	results, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.True(t, results[0].Sent)
	assert.True(t, results[0].UserID.IsEqual(translator.ID()))
	assert.True(t, dueJob.ReminderSent())
	mock.AssertExpectationsForObjects(t, factory, uow, jobRepo, userRepo, pushSender)
}

func TestSendSessionRemindersCommandHandler_Handle_GatewayFailureRetriesNextSweep(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	window := time.Hour
	translator := newTranslatorWithToken(t, "sv", "device-1")
	dueJob := newAcceptedDueJob(t, translator.ID())
	cmd, err := commands.NewSendSessionRemindersCommand(now, window)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("GetAcceptedStartingWithin", mock.Anything, now, window).
		Return([]*job.Job{dueJob}, nil).Once()
	userRepo.On("Get", mock.Anything, translator.ID()).Return(translator, nil).Once()
	pushSender := new(MockPushSender)
	pushSender.On("SendPush", mock.Anything, mock.Anything).
		Return(errors.New("gateway unavailable")).Once()
	factory := new(MockJobUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendSessionRemindersCommandHandler(factory, pushSender, testTimeouts())
	results, err := handler.Handle(ctx, cmd)

	require.NoError(t, err, "delivery failure must not abort the sweep")
	require.Len(t, results, 1)
	assert.False(t, results[0].Sent)
	assert.Equal(t, "gateway unavailable", results[0].Reason)
	assert.False(t, dueJob.ReminderSent(), "failed push leaves the job due for the next sweep")
	jobRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSendSessionRemindersCommandHandler_Handle_NoDeviceToken(t *testing.T) {
	ctx := t.Context()
	now := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	window := time.Hour
	translator := newTranslator(t, "sv")
	dueJob := newAcceptedDueJob(t, translator.ID())
	cmd, err := commands.NewSendSessionRemindersCommand(now, window)
	require.NoError(t, err)

	jobRepo := new(MockJobRepository)
	userRepo := new(MockUserRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("JobRepository").Return(jobRepo).Once()
	uow.On("UserRepository").Return(userRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	jobRepo.On("GetAcceptedStartingWithin", mock.Anything, now, window).
		Return([]*job.Job{dueJob}, nil).Once()
	userRepo.On("Get", mock.Anything, translator.ID()).Return(translator, nil).Once()
	pushSender := new(MockPushSender)
	factory := new(MockJobUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSendSessionRemindersCommandHandler(factory, pushSender, testTimeouts())
	results, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.False(t, results[0].Sent)
	assert.Equal(t, "no registered device", results[0].Reason)
	pushSender.AssertNotCalled(t, "SendPush", mock.Anything, mock.Anything)
}

func TestSendSessionRemindersCommandHandler_Handle_ValidationError(t *testing.T) {
	handler := commands.NewSendSessionRemindersCommandHandler(
		new(MockJobUserUoWFactory), new(MockPushSender), testTimeouts())

	_, err := handler.Handle(t.Context(), commands.SendSessionRemindersCommand{})

	require.ErrorIs(t, err, commands.ErrSendSessionRemindersCommandIsNotConstructed)
}
