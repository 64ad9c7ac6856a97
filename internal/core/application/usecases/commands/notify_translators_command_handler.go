package commands

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"booking/internal/core/domain/model/job"
	"booking/internal/core/domain/model/user"
	"booking/internal/core/domain/services"
	"booking/internal/core/ports"
)

// NotificationTimeouts bounds each individual delivery attempt. A slow
// gateway delays only its own attempt, never the whole fan-out.
type NotificationTimeouts struct {
	Push time.Duration
	SMS  time.Duration
}

// NotifyTranslatorsCommandHandler announces a job to every eligible
// translator, one goroutine per translator per channel.
//
// Delivery failures are data, not errors: each attempt lands in its own
// DeliveryResult slot and a gateway failure never aborts the other attempts.
// The handler only returns an error when the job or the candidate list
// cannot be loaded at all.
type NotifyTranslatorsCommandHandler struct {
	uowFactory JobUserUoWFactory
	pushSender ports.PushSender
	smsSender  ports.SMSSender
	timeouts   NotificationTimeouts
	matcher    services.TranslatorMatcher
}

// NewNotifyTranslatorsCommandHandler creates a handler for notification fan-out.
func NewNotifyTranslatorsCommandHandler(
	uowFactory JobUserUoWFactory,
	pushSender ports.PushSender,
	smsSender ports.SMSSender,
	timeouts NotificationTimeouts,
) NotifyTranslatorsCommandHandler {
	return NotifyTranslatorsCommandHandler{
		uowFactory: uowFactory,
		pushSender: pushSender,
		smsSender:  smsSender,
		timeouts:   timeouts,
		matcher:    services.NewTranslatorMatcher(),
	}
}

// Handle loads the job and its eligible translators, then dispatches the
// announcement concurrently. The returned slice holds one DeliveryResult per
// translator per selected channel, in stable order.
func (h NotifyTranslatorsCommandHandler) Handle(
	ctx context.Context,
	command NotifyTranslatorsCommand,
) ([]ports.DeliveryResult, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	announcedJob, translators, err := h.loadTargets(ctx, command)
	if err != nil {
		return nil, err
	}

	notification := buildAnnouncement(announcedJob)

	type attempt struct {
		target  *user.User
		channel ports.Channel
	}

	attempts := make([]attempt, 0, len(translators)*2)
	for _, translator := range translators {
		if command.Channel().WantsPush() {
			attempts = append(attempts, attempt{target: translator, channel: ports.ChannelPush})
		}
		if command.Channel().WantsSMS() {
			attempts = append(attempts, attempt{target: translator, channel: ports.ChannelSMS})
		}
	}

	results := make([]ports.DeliveryResult, len(attempts))
	group, groupCtx := errgroup.WithContext(ctx)

	for i, a := range attempts {
		group.Go(func() error {
			results[i] = h.deliver(groupCtx, notification, a.target, a.channel)
			return nil
		})
	}

	// Goroutines never return errors; Wait only synchronizes.
	_ = group.Wait()

	return results, nil
}

func (h NotifyTranslatorsCommandHandler) loadTargets(
	ctx context.Context,
	command NotifyTranslatorsCommand,
) (*job.Job, []*user.User, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	announcedJob, err := uow.JobRepository().Get(ctx, command.JobID())
	if err != nil {
		return nil, nil, err
	}

	candidates, err := uow.UserRepository().GetTranslatorsByLanguage(ctx, announcedJob.Language())
	if err != nil {
		return nil, nil, err
	}

	translators, err := h.matcher.EligibleTranslators(announcedJob, candidates)
	if err != nil {
		return nil, nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, nil, err
	}

	return announcedJob, translators, nil
}

func (h NotifyTranslatorsCommandHandler) deliver(
	ctx context.Context,
	notification ports.Notification,
	target *user.User,
	channel ports.Channel,
) ports.DeliveryResult {
	result := ports.DeliveryResult{
		UserID:  target.ID(),
		Channel: channel,
	}

	switch channel {
	case ports.ChannelPush:
		if target.PushToken() == "" {
			result.Reason = "no registered device"
			return result
		}

		notification.PushToken = target.PushToken()

		attemptCtx, cancel := context.WithTimeout(ctx, h.timeouts.Push)
		defer cancel()

		if err := h.pushSender.SendPush(attemptCtx, notification); err != nil {
			result.Reason = err.Error()
			return result
		}

	case ports.ChannelSMS:
		if target.Phone() == "" {
			result.Reason = "no phone number"
			return result
		}

		notification.Phone = target.Phone()

		attemptCtx, cancel := context.WithTimeout(ctx, h.timeouts.SMS)
		defer cancel()

		if err := h.smsSender.SendSMS(attemptCtx, notification); err != nil {
			result.Reason = err.Error()
			return result
		}

	default:
		result.Reason = fmt.Sprintf("unsupported channel %q", channel)
		return result
	}

	result.Sent = true
	return result
}

func buildAnnouncement(announcedJob *job.Job) ports.Notification {
	return ports.Notification{
		JobID: announcedJob.ID(),
		Title: "New booking available",
		Body: fmt.Sprintf(
			"A %d min %s session on %s is open for acceptance.",
			announcedJob.DurationMin(),
			announcedJob.Language().Code(),
			announcedJob.StartAt().Format("2006-01-02 15:04"),
		),
	}
}
