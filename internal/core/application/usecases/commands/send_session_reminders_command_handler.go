package commands

import (
	"context"
	"fmt"

	"booking/internal/core/ports"
)

// SendSessionRemindersCommandHandler reminds assigned translators of
// imminent sessions. A job is only marked as reminded after its push attempt
// succeeds, so a gateway outage retries on the next sweep.
type SendSessionRemindersCommandHandler struct {
	uowFactory JobUserUoWFactory
	pushSender ports.PushSender
	timeouts   NotificationTimeouts
}

// NewSendSessionRemindersCommandHandler creates a handler for reminder sweeps.
func NewSendSessionRemindersCommandHandler(
	uowFactory JobUserUoWFactory,
	pushSender ports.PushSender,
	timeouts NotificationTimeouts,
) SendSessionRemindersCommandHandler {
	return SendSessionRemindersCommandHandler{
		uowFactory: uowFactory,
		pushSender: pushSender,
		timeouts:   timeouts,
	}
}

// Handle processes the reminder sweep. Returns one DeliveryResult per due
// job; failures stay in the results and never abort the sweep.
func (h SendSessionRemindersCommandHandler) Handle(
	ctx context.Context,
	command SendSessionRemindersCommand,
) ([]ports.DeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	jobRepo := uow.JobRepository()
	userRepo := uow.UserRepository()

	dueJobs, err := jobRepo.GetAcceptedStartingWithin(ctx, command.Now(), command.Window())
	if err != nil {
		return nil, err
	}

	results := make([]ports.DeliveryResult, 0, len(dueJobs))
	for _, dueJob := range dueJobs {
		translator, err := userRepo.Get(ctx, *dueJob.Translator())
		if err != nil {
			return nil, err
		}

		result := ports.DeliveryResult{
			UserID:  translator.ID(),
			Channel: ports.ChannelPush,
		}

		if translator.PushToken() == "" {
			result.Reason = "no registered device"
			results = append(results, result)
			continue
		}

		notification := ports.Notification{
			JobID:     dueJob.ID(),
			Title:     "Upcoming session",
			Body:      fmt.Sprintf("Your %s session starts at %s.", dueJob.Language().Code(), dueJob.StartAt().Format("15:04")),
			PushToken: translator.PushToken(),
		}

		attemptCtx, cancel := context.WithTimeout(ctx, h.timeouts.Push)
		err = h.pushSender.SendPush(attemptCtx, notification)
		cancel()

		if err != nil {
			result.Reason = err.Error()
			results = append(results, result)
			continue
		}

		if err = dueJob.MarkReminderSent(); err != nil {
			return nil, err
		}
		if err = jobRepo.Update(ctx, dueJob); err != nil {
			return nil, err
		}

		result.Sent = true
		results = append(results, result)
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return results, nil
}
